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

// Package serializer provides encoding and decoding of sort results and
// requests in multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented output
//   - Used for API responses and scripting
//
// YAML:
//   - Human-readable, gopkg.in/yaml.v3
//
// Table:
//   - FIELD/VALUE rows with flattened keys (versions[0], versions[1], ...)
//   - Rows are ordered naturally, so versions[2] precedes versions[10]
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, output)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// # Usage - Decoding
//
//	r, err := serializer.NewReader(serializer.FormatYAML, body)
//	if err != nil {
//	    return err
//	}
//	var req SortRequest
//	err = r.Deserialize(&req)
//
// Remote content is fetched with HttpReader, which applies the transport
// timeouts from pkg/defaults:
//
//	hr := serializer.NewHttpReader(serializer.WithTotalTimeout(10 * time.Second))
//	data, err := hr.ReadWithContext(ctx, "https://example.com/tags.txt")
//
// # Format Detection
//
// File extension-based detection:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default)
package serializer
