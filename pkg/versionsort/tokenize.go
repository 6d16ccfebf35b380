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

package versionsort

import "math"

// MaxComponents caps the number of components recorded per string. Input
// past the last recorded component is ignored.
const MaxComponents = 64

// Tokenize splits s into its components. It never fails: bytes that are not
// ASCII digits, ASCII letters or '-' are skipped, so empty or all-symbol
// input yields an empty slice.
func Tokenize(s string) []Component {
	var comps []Component

	offset := 0
	for offset < len(s) && len(comps) < MaxComponents {
		c := s[offset]
		switch {
		case isDigit(c):
			start := offset
			var n uint64
			overflow := false
			for offset < len(s) && isDigit(s[offset]) {
				if !overflow {
					n = n*10 + uint64(s[offset]-'0')
					overflow = n > math.MaxUint32
				}
				offset++
			}
			if overflow {
				comps = append(comps, Text(s[start:offset]))
			} else {
				comps = append(comps, Number(uint32(n)))
			}

		case c == '-' || isAlpha(c):
			start := offset
			if c == '-' {
				offset++
			}
			for offset < len(s) && isAlpha(s[offset]) {
				offset++
			}
			comps = append(comps, Text(s[start:offset]))

		default:
			offset++
		}
	}

	return comps
}

// Parse tokenizes s and tags the result with its batch index.
func Parse(s string, index int) Version {
	return Version{Index: index, Components: Tokenize(s)}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
