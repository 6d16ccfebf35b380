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

package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/NVIDIA/version-sorter/pkg/errors"
	"github.com/NVIDIA/version-sorter/pkg/serializer"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// maxConcurrentLoads bounds LoadAll fan-out.
const maxConcurrentLoads = 8

// Option configures a Loader.
type Option func(*Loader)

// WithStdin replaces os.Stdin as the source for "-". A nil reader is ignored.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) {
		if r != nil {
			l.stdin = r
		}
	}
}

// WithHttpReader sets the reader used for http(s) sources.
func WithHttpReader(r *serializer.HttpReader) Option {
	return func(l *Loader) {
		l.http = r
	}
}

// WithMaxEntries rejects sources with more than n entries. Zero, the default,
// disables the check.
func WithMaxEntries(n int) Option {
	return func(l *Loader) {
		l.maxEntries = n
	}
}

// Loader reads entries from files, URLs, and stdin.
type Loader struct {
	stdin      io.Reader
	http       *serializer.HttpReader
	maxEntries int
}

// NewLoader returns a Loader reading "-" from os.Stdin.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		stdin: os.Stdin,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.http == nil {
		l.http = serializer.NewHttpReader()
	}
	return l
}

// Load reads path with a default Loader.
func Load(ctx context.Context, path string) ([]string, error) {
	return NewLoader().Load(ctx, path)
}

// LoadAll reads paths with a default Loader.
func LoadAll(ctx context.Context, paths []string) ([]string, error) {
	return NewLoader().LoadAll(ctx, paths)
}

// Load reads and parses a single source.
func (l *Loader) Load(ctx context.Context, path string) ([]string, error) {
	data, err := l.read(ctx, path)
	if err != nil {
		return nil, err
	}

	entries, err := Parse(data, path)
	if err != nil {
		return nil, err
	}

	if l.maxEntries > 0 && len(entries) > l.maxEntries {
		return nil, errors.NewWithContext(errors.ErrCodePayloadTooLarge,
			fmt.Sprintf("source has %d entries, limit is %d", len(entries), l.maxEntries),
			map[string]any{"source": path})
	}

	slog.Debug("loaded source", "source", path, "entries", len(entries))
	return entries, nil
}

// LoadAll reads paths concurrently. Entries are returned in argument order.
// The first failure cancels the remaining reads.
func (l *Loader) LoadAll(ctx context.Context, paths []string) ([]string, error) {
	results := make([][]string, len(paths))

	stdinSeen := false
	for _, path := range paths {
		if path != Stdin {
			continue
		}
		if stdinSeen {
			return nil, errors.New(errors.ErrCodeInvalidRequest, "stdin may only be given once")
		}
		stdinSeen = true
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)

	for i, path := range paths {
		g.Go(func() error {
			entries, err := l.Load(ctx, path)
			if err != nil {
				return err
			}
			results[i] = entries
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]string, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func (l *Loader) read(ctx context.Context, path string) ([]byte, error) {
	switch {
	case path == Stdin:
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "failed to read stdin", err)
		}
		return data, nil

	case serializer.IsRemote(path):
		data, err := l.http.ReadWithContext(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, errors.Wrap(errors.ErrCodeTimeout, "fetch canceled", err)
			}
			return nil, errors.WrapWithContext(errors.ErrCodeUnavailable, "failed to fetch source", err,
				map[string]any{"source": path})
		}
		return data, nil

	default:
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "source not found", err,
					map[string]any{"source": path})
			}
			return nil, errors.WrapWithContext(errors.ErrCodeInternal, "failed to read source", err,
				map[string]any{"source": path})
		}
		return data, nil
	}
}

// Parse splits raw source content into entries. The path is only used to
// select YAML parsing by extension.
func Parse(data []byte, path string) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' && gjson.ValidBytes(trimmed) {
		return parseJSON(trimmed), nil
	}

	if isYAML(path) {
		return parseYAML(trimmed, path)
	}

	return parseLines(data), nil
}

func parseJSON(data []byte) []string {
	arr := gjson.ParseBytes(data).Array()
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if item.Type == gjson.String {
			out = append(out, item.String())
			continue
		}
		out = append(out, item.Raw)
	}
	return out
}

func parseYAML(data []byte, path string) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}

	reader, err := serializer.NewReader(serializer.FormatYAML, bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to create YAML reader", err)
	}

	var doc yaml.Node
	if err := reader.Deserialize(&doc); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid YAML", err,
			map[string]any{"source": path})
	}

	if len(doc.Content) == 0 {
		return []string{}, nil
	}

	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "YAML source must be a sequence",
			map[string]any{"source": path})
	}

	out := make([]string, 0, len(seq.Content))
	for _, item := range seq.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("YAML item at line %d is not a scalar", item.Line),
				map[string]any{"source": path})
		}
		out = append(out, item.Value)
	}
	return out, nil
}

func parseLines(data []byte) []string {
	out := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func isYAML(path string) bool {
	return path != Stdin && serializer.FormatFromPath(path) == serializer.FormatYAML
}
