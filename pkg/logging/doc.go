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

// Package logging provides structured logging for the vsort CLI and the
// version API server.
//
// It configures the standard library slog package with a JSON handler on
// stderr, module and version attributes on every record, and source location
// for debug output.
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("vsortd", version)
//	    slog.Info("server started", "port", 8080)
//	}
//
// Explicit level, as the CLI does after parsing --log-level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("vsort", version, "debug")
//
// # Log Levels
//
// Supported levels (case-insensitive): debug, info (default), warn/warning,
// error. When no level is given, the LOG_LEVEL environment variable is used.
//
// # Output Format
//
//	{"time":"2025-01-15T10:30:00.123Z","level":"INFO","msg":"sorted","module":"vsort","version":"v1.0.0","count":12}
package logging
