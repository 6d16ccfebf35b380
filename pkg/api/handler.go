// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/NVIDIA/version-sorter/pkg/defaults"
	"github.com/NVIDIA/version-sorter/pkg/errors"
	"github.com/NVIDIA/version-sorter/pkg/serializer"
	"github.com/NVIDIA/version-sorter/pkg/server"
	"github.com/NVIDIA/version-sorter/pkg/versionsort"
)

// Route paths.
const (
	RouteSort     = "/v1/sort"
	RouteCompare  = "/v1/compare"
	RouteTokenize = "/v1/tokenize"
)

// Handler serves the version routes.
type Handler struct {
	// MaxVersions caps the number of versions in one request.
	MaxVersions int
	// MaxBodyBytes caps the request body size.
	MaxBodyBytes int64
}

// NewHandler returns a Handler with limits from pkg/defaults.
func NewHandler() *Handler {
	return &Handler{
		MaxVersions:  defaults.MaxVersionsPerRequest,
		MaxBodyBytes: defaults.MaxRequestBodyBytes,
	}
}

// Routes returns the handler map for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		RouteSort:     h.HandleSort,
		RouteCompare:  h.HandleCompare,
		RouteTokenize: h.HandleTokenize,
	}
}

// HandleSort handles POST /v1/sort.
func (h *Handler) HandleSort(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}

	var req SortRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid sort request", nil)
		return
	}

	if err := h.checkCount(len(req.Versions)); err != nil {
		server.WriteErrorFromErr(w, r, err, "Too many versions", nil)
		return
	}

	indices := versionsort.SortIndices(req.Versions, req.Order)
	sorted := make([]string, len(indices))
	for i, idx := range indices {
		sorted[i] = req.Versions[idx]
	}

	op := "sort"
	if req.Order == versionsort.Descending {
		op = "rsort"
	}
	sortBatchSize.Observe(float64(len(req.Versions)))
	operationsTotal.WithLabelValues(op).Inc()

	slog.Debug("sorted versions",
		"requestID", server.RequestIDFromContext(r.Context()),
		"count", len(req.Versions),
		"order", req.Order.String(),
	)

	serializer.RespondJSON(w, http.StatusOK, SortResponse{
		Order:    req.Order,
		Versions: sorted,
		Indices:  indices,
	})
}

// HandleCompare handles GET /v1/compare?a=&b= and POST /v1/compare.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	var req CompareRequest
	if r.Method == http.MethodGet {
		q := r.URL.Query()
		if !q.Has("a") || !q.Has("b") {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Query parameters a and b are required", false, nil)
			return
		}
		req.A, req.B = q.Get("a"), q.Get("b")
	} else if err := h.decodeBody(w, r, &req); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid compare request", nil)
		return
	}

	operationsTotal.WithLabelValues("compare").Inc()

	serializer.RespondJSON(w, http.StatusOK, CompareResponse{
		A:      req.A,
		B:      req.B,
		Result: versionsort.Compare(req.A, req.B),
	})
}

// HandleTokenize handles POST /v1/tokenize.
func (h *Handler) HandleTokenize(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}

	var req TokenizeRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid tokenize request", nil)
		return
	}

	if err := h.checkCount(len(req.Versions)); err != nil {
		server.WriteErrorFromErr(w, r, err, "Too many versions", nil)
		return
	}

	resp := TokenizeResponse{Results: make([]TokenizeResult, len(req.Versions))}
	for i, v := range req.Versions {
		comps := versionsort.Tokenize(v)
		if comps == nil {
			comps = []versionsort.Component{}
		}
		resp.Results[i] = TokenizeResult{Input: v, Components: comps}
	}

	operationsTotal.WithLabelValues("tokenize").Inc()

	serializer.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) checkCount(n int) error {
	if h.MaxVersions > 0 && n > h.MaxVersions {
		return errors.NewWithContext(errors.ErrCodePayloadTooLarge,
			fmt.Sprintf("request has %d versions, limit is %d", n, h.MaxVersions),
			map[string]any{"count": n, "limit": h.MaxVersions})
	}
	return nil
}

// decodeBody reads at most MaxBodyBytes and decodes JSON or YAML by Content-Type.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "request body is empty")
	}

	body := r.Body
	if h.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.WrapWithContext(errors.ErrCodePayloadTooLarge, "request body too large", err,
				map[string]any{"limit": tooLarge.Limit})
		}
		return errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read request body", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "request body is empty")
	}

	reader, err := serializer.NewReader(formatFromContentType(r.Header.Get("Content-Type")), bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to create body reader", err)
	}

	if err := reader.Deserialize(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid request body", err)
	}
	return nil
}

// formatFromContentType selects YAML for YAML media types and JSON otherwise.
func formatFromContentType(contentType string) serializer.Format {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		return serializer.FormatYAML
	default:
		return serializer.FormatJSON
	}
}

func allowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}

	w.Header().Set("Allow", strings.Join(methods, ", "))
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": methods,
		})
	return false
}
