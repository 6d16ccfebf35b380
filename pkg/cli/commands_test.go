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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/NVIDIA/version-sorter/pkg/header"
	"github.com/NVIDIA/version-sorter/pkg/versionsort"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard
	cmd.Reader = strings.NewReader(stdin)

	err := cmd.Run(context.Background(), append([]string{name}, args...))
	return out.String(), err
}

func decodeSortResult(t *testing.T, out string) SortResult {
	t.Helper()

	var res SortResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("failed to decode output %q: %v", out, err)
	}
	return res
}

func TestSortCommand(t *testing.T) {
	dir := t.TempDir()
	jsonInput := filepath.Join(dir, "versions.json")
	if err := os.WriteFile(jsonInput, []byte(`["2.0", "1.0"]`), 0o600); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	tests := []struct {
		name        string
		stdin       string
		args        []string
		wantOrder   versionsort.Direction
		wantVersion []string
		wantIndices []uint32
	}{
		{
			name:        "ascending arguments",
			args:        []string{"sort", "1.10", "1.9", "1.2"},
			wantOrder:   versionsort.Ascending,
			wantVersion: []string{"1.2", "1.9", "1.10"},
			wantIndices: []uint32{2, 1, 0},
		},
		{
			name:        "descending arguments",
			args:        []string{"rsort", "1.10", "1.9", "1.2"},
			wantOrder:   versionsort.Descending,
			wantVersion: []string{"1.10", "1.9", "1.2"},
			wantIndices: []uint32{0, 1, 2},
		},
		{
			name:        "stdin when no arguments",
			stdin:       "1.0\n1.0-rc1\n\n0.9\n",
			args:        []string{"sort"},
			wantOrder:   versionsort.Ascending,
			wantVersion: []string{"0.9", "1.0-rc1", "1.0"},
			wantIndices: []uint32{2, 1, 0},
		},
		{
			name:        "arguments precede input files",
			args:        []string{"sort", "--input", jsonInput, "1.5"},
			wantOrder:   versionsort.Ascending,
			wantVersion: []string{"1.0", "1.5", "2.0"},
			wantIndices: []uint32{2, 0, 1},
		},
		{
			name:        "explicit stdin input",
			stdin:       "v2\nv10\n",
			args:        []string{"rsort", "--input=-"},
			wantOrder:   versionsort.Descending,
			wantVersion: []string{"v10", "v2"},
			wantIndices: []uint32{1, 0},
		},
		{
			name:        "json key",
			args:        []string{"sort", "--key", "v", `{"v":"1.10"}`, `{"v":"1.9"}`},
			wantOrder:   versionsort.Ascending,
			wantVersion: []string{`{"v":"1.9"}`, `{"v":"1.10"}`},
			wantIndices: []uint32{1, 0},
		},
		{
			name: "image tag",
			args: []string{"sort", "--image-tag",
				"nvcr.io/nvidia/cuda:12.10.0", "nvcr.io/nvidia/cuda:12.4.1", "nginx"},
			wantOrder:   versionsort.Ascending,
			wantVersion: []string{"nginx", "nvcr.io/nvidia/cuda:12.4.1", "nvcr.io/nvidia/cuda:12.10.0"},
			wantIndices: []uint32{2, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			res := decodeSortResult(t, out)
			if res.Kind != header.KindSortResult || res.APIVersion != header.APIVersion {
				t.Errorf("header = %+v, want kind %s", res.Header, header.KindSortResult)
			}
			if res.Order != tt.wantOrder {
				t.Errorf("order = %v, want %v", res.Order, tt.wantOrder)
			}
			if !reflect.DeepEqual(res.Versions, tt.wantVersion) {
				t.Errorf("versions = %v, want %v", res.Versions, tt.wantVersion)
			}
			if !reflect.DeepEqual(res.Indices, tt.wantIndices) {
				t.Errorf("indices = %v, want %v", res.Indices, tt.wantIndices)
			}
		})
	}
}

func TestSortCommand_IndicesOnly(t *testing.T) {
	out, err := runCLI(t, "", "sort", "--indices", "3.0", "1.0", "2.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []uint32
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("failed to decode output %q: %v", out, err)
	}
	if want := []uint32{1, 2, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("indices = %v, want %v", got, want)
	}
}

func TestSortCommand_LargeStdinHasNoDefaultLimit(t *testing.T) {
	const n = 10001

	var b strings.Builder
	for i := range n {
		fmt.Fprintf(&b, "v1.%d\n", i)
	}

	out, err := runCLI(t, b.String(), "sort", "--indices")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []uint32
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if len(got) != n {
		t.Fatalf("got %d indices, want %d", len(got), n)
	}
	for i, idx := range got {
		if idx != uint32(i) {
			t.Fatalf("indices[%d] = %d, want %d", i, idx, i)
		}
	}
}

func TestSortCommand_MaxEntries(t *testing.T) {
	_, err := runCLI(t, "1\n2\n3\n", "sort", "--max-entries", "2")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "limit is 2") {
		t.Errorf("error = %q, want entry limit error", err.Error())
	}

	if _, err := runCLI(t, "1\n2\n3\n", "sort", "--max-entries", "3"); err != nil {
		t.Errorf("unexpected error at the limit: %v", err)
	}
}

func TestSortCommand_RemoteInput(t *testing.T) {
	userAgents := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgents <- r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("1.10\n1.9\n"))
	}))
	defer srv.Close()

	out, err := runCLI(t, "", "sort", "--http-timeout", "5s", "--input", srv.URL+"/tags.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := decodeSortResult(t, out)
	if want := []string{"1.9", "1.10"}; !reflect.DeepEqual(res.Versions, want) {
		t.Errorf("versions = %v, want %v", res.Versions, want)
	}
	if want, got := name+"/"+version, <-userAgents; got != want {
		t.Errorf("User-Agent = %q, want %q", got, want)
	}
}

func TestSortCommand_RemoteInputTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := runCLI(t, "", "sort", "--http-timeout", "50ms", "--input", srv.URL+"/tags.txt")
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if !strings.Contains(err.Error(), "failed to load input") {
		t.Errorf("error = %q, want load failure", err.Error())
	}
}

func TestSortCommand_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{
			name:   "key and image tag together",
			args:   []string{"sort", "--key", "v", "--image-tag", "x"},
			errMsg: "mutually exclusive",
		},
		{
			name:   "missing input file",
			args:   []string{"sort", "-i", filepath.Join(t.TempDir(), "missing.txt")},
			errMsg: "failed to load input",
		},
		{
			name:   "key path not found",
			args:   []string{"sort", "--key", "version", `{"v":"1.0"}`},
			errMsg: "failed to extract sort keys",
		},
		{
			name:   "digest-only image",
			args:   []string{"sort", "--image-tag", "nginx@sha256:" + strings.Repeat("a", 64)},
			errMsg: "failed to extract sort keys",
		},
		{
			name:   "negative max entries",
			args:   []string{"sort", "--max-entries=-1", "-i", "-"},
			errMsg: "must not be negative",
		},
		{
			name:   "unknown format",
			args:   []string{"sort", "--format", "xml", "1.0"},
			errMsg: "unknown output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, "", tt.args...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestSortCommand_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sorted.yaml")

	out, err := runCLI(t, "", "sort", "--format", "yaml", "--output", path, "1.10", "1.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected nothing on stdout, got %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	got := string(data)
	for _, want := range []string{"kind: SortResult", "apiVersion: vsort.nvidia.com/v1", "order: asc", "- \"1.2\"", "- \"1.10\""} {
		if !strings.Contains(got, want) {
			t.Errorf("output file missing %q:\n%s", want, got)
		}
	}
}

func TestCompareCommand(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.9", "1.10", -1},
		{"1.10", "1.9", 1},
		{"1.0-rc1", "1.0", -1},
		{"v1.0", "1.0", -1},
		{"2.0", "2.0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			out, err := runCLI(t, "", "compare", tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var res CompareResult
			if err := json.Unmarshal([]byte(out), &res); err != nil {
				t.Fatalf("failed to decode output %q: %v", out, err)
			}
			if res.A != tt.a || res.B != tt.b {
				t.Errorf("inputs = (%q, %q), want (%q, %q)", res.A, res.B, tt.a, tt.b)
			}
			if res.Result != tt.want {
				t.Errorf("result = %d, want %d", res.Result, tt.want)
			}
		})
	}
}

func TestCompareCommand_ArgCount(t *testing.T) {
	for _, args := range [][]string{
		{"compare"},
		{"compare", "1.0"},
		{"compare", "1.0", "2.0", "3.0"},
	} {
		if _, err := runCLI(t, "", args...); err == nil {
			t.Errorf("expected error for args %v", args)
		}
	}
}

func TestTokenizeCommand(t *testing.T) {
	out, err := runCLI(t, "", "tokenize", "v1.10-rc2", "...")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc TokenizeResult
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("failed to decode output %q: %v", out, err)
	}
	if doc.Kind != header.KindTokenizeResult {
		t.Errorf("kind = %q, want %q", doc.Kind, header.KindTokenizeResult)
	}
	res := doc.Results
	if len(res) != 2 {
		t.Fatalf("got %d results, want 2", len(res))
	}

	want := []versionsort.Component{
		versionsort.Text("v"),
		versionsort.Number(1),
		versionsort.Number(10),
		versionsort.Text("-rc"),
		versionsort.Number(2),
	}
	if res[0].Input != "v1.10-rc2" || !reflect.DeepEqual(res[0].Components, want) {
		t.Errorf("result[0] = %+v, want components %+v", res[0], want)
	}
	if res[1].Input != "..." || len(res[1].Components) != 0 {
		t.Errorf("result[1] = %+v, want no components", res[1])
	}
	if !strings.Contains(out, `"components": []`) {
		t.Errorf("empty component list should encode as [], got:\n%s", out)
	}
}

func TestTokenizeCommand_TableFormat(t *testing.T) {
	out, err := runCLI(t, "", "tokenize", "--format", "table", "1.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "FIELD") {
		t.Errorf("expected table header, got:\n%s", out)
	}
	if !strings.Contains(out, "results[0].input") {
		t.Errorf("expected flattened input field, got:\n%s", out)
	}
}

func TestTokenizeCommand_NoArgs(t *testing.T) {
	if _, err := runCLI(t, "", "tokenize"); err == nil {
		t.Error("expected error without arguments")
	}
}
