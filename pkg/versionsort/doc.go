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

// Package versionsort orders arbitrary strings the way people expect version
// numbers to sort.
//
// # Overview
//
// No versioning scheme is assumed. Each string is split into components:
// runs of ASCII digits become numbers, runs of ASCII letters (optionally led
// by a single '-') become text, and everything else only separates
// components. Numbers compare numerically, so "1.9" sorts before "1.10".
//
//	versionsort.Tokenize("v1.10-rc2")
//	// [Text("v") Number(1) Number(10) Text("-rc") Number(2)]
//
// # Ordering Rules
//
//   - number vs number: numeric
//   - text vs text: byte-wise over the common prefix (case-sensitive)
//   - number vs text: the number is greater
//   - one sequence ends first: it is less when the other continues with a
//     number and greater when the other continues with text
//
// This puts pre-release style suffixes before the release they qualify:
//
//	1.0.9a < 1.0.9 < 1.0.10 < 2.0.pre < 2.0
//
// Digit runs that do not fit in 32 bits are kept as text rather than
// wrapped, and at most MaxComponents components are read from any string.
//
// # Usage
//
//	idx := versionsort.Sort([]string{"10", "9", "2"})     // [2 1 0]
//	sorted := versionsort.RSortStrings(tags)              // highest first
//	c := versionsort.Compare("1.9", "1.10")               // -1
//
//	byName := versionsort.SortBy(releases, func(r Release) string {
//	    return r.Name
//	}, versionsort.Ascending)
//
// All functions are pure and safe for concurrent use.
package versionsort
