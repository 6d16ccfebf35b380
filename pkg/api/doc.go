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

// Package api exposes version sorting over HTTP.
//
// This package is a thin wrapper around pkg/server: it configures logging,
// registers the version routes, and delegates the server lifecycle.
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - POST /v1/sort           - Sort versions; returns sorted values and the index permutation
//   - GET|POST /v1/compare    - Compare two versions; result is -1, 0 or 1
//   - POST /v1/tokenize       - Return the component list of each version
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Request Bodies
//
// Bodies are JSON by default. application/yaml, application/x-yaml and
// text/yaml are decoded as YAML.
//
//	curl -X POST http://localhost:8080/v1/sort \
//	  -d '{"versions":["1.10","1.9","1.2"],"order":"desc"}'
//
//	{"order":"desc","versions":["1.10","1.9","1.2"],"indices":[0,1,2]}
//
//	curl 'http://localhost:8080/v1/compare?a=1.0-rc1&b=1.0'
//
//	{"a":"1.0-rc1","b":"1.0","result":-1}
//
// # Limits
//
// Requests with more than defaults.MaxVersionsPerRequest versions, or bodies
// larger than defaults.MaxRequestBodyBytes, fail with 413 PAYLOAD_TOO_LARGE.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/version-sorter/pkg/api.version=1.0.0'"
package api
