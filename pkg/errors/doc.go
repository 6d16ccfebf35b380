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

// Package errors provides structured errors shared by the vsort CLI and the
// version API server.
//
// Each error carries an ErrorCode for programmatic handling, a human-readable
// message, an optional cause and optional context:
//
//	if len(req.Versions) > limit {
//	    return errors.NewWithContext(errors.ErrCodePayloadTooLarge,
//	        "too many versions", map[string]any{"limit": limit})
//	}
//
// StructuredError implements Unwrap, so errors.Is and errors.As from the
// standard library see through it. HTTPStatus maps a code to the status the
// API server responds with.
//
// The ordering core in pkg/versionsort never returns errors; these types are
// only produced by input loading, key extraction and request handling.
package errors
