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

// Package server provides the HTTP runtime shared by API binaries: routing,
// middleware, health probes, Prometheus metrics, and graceful shutdown.
//
// # Architecture
//
// API routes registered with WithHandler are wrapped with the middleware
// chain, outermost first:
//
//   - metrics: request count, latency and in-flight gauge per route
//   - version: Accept header negotiation (application/vnd.nvidia.vsort.v1+json)
//   - request ID: X-Request-Id propagation, generated when absent or invalid
//   - panic recovery: converts panics into 500 INTERNAL responses
//   - rate limit: token bucket (golang.org/x/time/rate), 429 with Retry-After
//   - logging: debug-level request start/completion with status and duration
//
// System routes are served without middleware:
//
//	GET /health    liveness
//	GET /ready     readiness, 503 until listening and again during shutdown
//	GET /metrics   Prometheus exposition
//
// GET / lists all routes unless the caller supplies its own "/" handler.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("vsortd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/sort": handleSort,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until SIGINT, SIGTERM, or ctx cancellation, then drains
// in-flight requests for up to ShutdownTimeout.
//
// # Configuration
//
// NewConfig reads these environment variables; invalid values are ignored:
//
//	PORT                       listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS   graceful shutdown budget (default 30)
//	RATE_LIMIT                 requests per second (default 100)
//	RATE_LIMIT_BURST           token bucket size (default 200)
//
// # Errors
//
// Every error response is an ErrorResponse with a pkg/errors code, the
// request ID, and a retryable hint. WriteErrorFromErr derives the HTTP
// status from a StructuredError's code.
package server
