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

// Package cli implements the vsort command-line interface.
//
// # Commands
//
// sort, rsort - Order versions:
//
//	vsort sort [VERSION...] [--input FILE|URL|-] [--key PATH | --image-tag] [--indices]
//	vsort rsort [VERSION...] [--input FILE|URL|-] [--key PATH | --image-tag] [--indices]
//
// Entries come from positional arguments and any number of --input sources.
// Each source may hold a JSON array, a YAML sequence, or one entry per line.
// Without arguments or inputs, entries are read from stdin. Sources are not
// size limited unless --max-entries is set; --http-timeout and --insecure
// control fetching of http(s) sources. The result lists
// the entries in order together with the index permutation into the input.
//
// compare - Compare two versions:
//
//	vsort compare A B
//
// Prints -1, 0, or 1 along with both inputs.
//
// tokenize - Show version components:
//
//	vsort tokenize VERSION...
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env: VSORT_LOG_LEVEL)
//	--debug        Shorthand for --log-level=debug
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Output flags shared by every command:
//
//	--output, -o   Output file path (default: stdout, env: VSORT_OUTPUT)
//	--format, -t   Output format: json, yaml, table (default: json, env: VSORT_FORMAT)
//
// # Examples
//
// Sort git tags newest first:
//
//	git tag | vsort rsort --format yaml
//
// Order a JSON release list by its "version" field:
//
//	vsort sort --key version -i releases.json
//
// Order image references by tag:
//
//	vsort sort --image-tag nvcr.io/nvidia/cuda:12.4.1 nvcr.io/nvidia/cuda:12.10.0
//
// Logs are written to stderr as structured JSON so stdout stays parseable.
package cli
