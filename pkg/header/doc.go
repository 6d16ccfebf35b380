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

// Package header provides the envelope stamped on vsort result documents.
//
// Results written by the CLI embed a Header inline, so every document
// carries its kind, schema version, and generation metadata:
//
//	kind: SortResult
//	apiVersion: vsort.nvidia.com/v1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//	order: asc
//	versions:
//	  - "1.2"
//	  - "1.10"
//
// Embed it in a result type with:
//
//	type SortResult struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    ...
//	}
package header
