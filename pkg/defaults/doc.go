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

// Package defaults provides centralized configuration constants for vsort
// and vsortd.
//
// Timeouts and request limits live here so the CLI, the API handlers and the
// HTTP server agree on them.
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CLIInputTimeout)
//	defer cancel()
//
// # Categories
//
//   - Handler timeouts and limits: API request processing
//   - Server timeouts: HTTP server configuration
//   - HTTP client timeouts: fetching remote version lists
//   - CLI timeouts: loading command-line inputs
package defaults
