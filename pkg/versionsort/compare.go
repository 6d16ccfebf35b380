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

import (
	"cmp"
	"strings"
)

// CompareComponents orders two component sequences, returning -1, 0 or 1.
//
// Components are compared pairwise: numbers numerically, text byte-wise over
// the shorter of the two lengths only, and a number always outranks text.
// When one sequence is a prefix of the other, the shorter one is less if the
// longer continues with a number and greater if it continues with text, so
// "1" < "1.2" but "a" > "a.b".
func CompareComponents(a, b []Component) int {
	n := min(len(a), len(b))

	for k := range n {
		ca, cb := a[k], b[k]
		switch {
		case ca.Kind == KindNumber && cb.Kind == KindNumber:
			if c := cmp.Compare(ca.Number, cb.Number); c != 0 {
				return c
			}
		case ca.Kind == KindText && cb.Kind == KindText:
			sz := min(len(ca.Text), len(cb.Text))
			if c := strings.Compare(ca.Text[:sz], cb.Text[:sz]); c != 0 {
				return c
			}
		case ca.Kind == KindNumber:
			return 1
		default:
			return -1
		}
	}

	switch {
	case len(a) < len(b):
		if b[n].Kind == KindNumber {
			return -1
		}
		return 1
	case len(a) > len(b):
		if a[n].Kind == KindNumber {
			return 1
		}
		return -1
	default:
		return 0
	}
}

// Compare tokenizes a and b and orders them. The result is negative when a
// sorts before b, zero when they are equal under the ordering and positive
// otherwise.
func Compare(a, b string) int {
	return CompareComponents(Tokenize(a), Tokenize(b))
}

// Compare orders v against other by components; the batch index is ignored.
func (v Version) Compare(other Version) int {
	return CompareComponents(v.Components, other.Components)
}
