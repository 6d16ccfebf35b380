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

// Package source loads the entries to be sorted from stdin, local files,
// or http(s) URLs.
//
// Content is detected in this order:
//   - a JSON array: string elements yield their value, other elements
//     their raw JSON text (so objects can be keyed with pkg/keys)
//   - a YAML sequence, for .yaml and .yml paths: scalar items yield their
//     literal text, so 1.10 stays "1.10"
//   - newline-delimited text: surrounding whitespace is trimmed and blank
//     lines are dropped
//
// LoadAll reads several sources concurrently and concatenates the entries
// in argument order.
package source
