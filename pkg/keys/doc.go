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

// Package keys extracts sort keys from entries.
//
// A Func maps an entry to the version string it should be ordered by:
//
//	Identity            the entry itself
//	JSONPath("a.b")     a gjson path into a JSON object entry
//	ImageTag            the tag of a container image reference
//
// Extract applies a Func to every entry and fails on the first entry that
// cannot be keyed, reporting its position.
package keys
