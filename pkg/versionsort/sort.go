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
	"fmt"
	"slices"
	"strings"
)

// Direction selects ascending or descending order.
type Direction int

const (
	// Ascending sorts lowest version first.
	Ascending Direction = iota
	// Descending sorts highest version first.
	Descending
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection accepts asc, ascending, desc and descending (any case).
// An empty string means Ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("invalid sort direction: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// SupportedDirections lists the canonical direction names.
func SupportedDirections() []string {
	return []string{Ascending.String(), Descending.String()}
}

// Sort returns the indices of versions in ascending order.
func Sort(versions []string) []uint32 {
	return SortIndices(versions, Ascending)
}

// RSort returns the indices of versions in descending order.
func RSort(versions []string) []uint32 {
	return SortIndices(versions, Descending)
}

// SortIndices tokenizes every input once and returns the permutation of
// original positions in the requested order. The sort is not stable: inputs
// that compare equal may appear in any relative order.
func SortIndices(versions []string, dir Direction) []uint32 {
	parsed := make([]Version, len(versions))
	for i, v := range versions {
		parsed[i] = Parse(v, i)
	}

	if dir == Descending {
		slices.SortFunc(parsed, func(a, b Version) int {
			return -a.Compare(b)
		})
	} else {
		slices.SortFunc(parsed, Version.Compare)
	}

	indices := make([]uint32, len(parsed))
	for i, v := range parsed {
		indices[i] = uint32(v.Index)
	}
	return indices
}

// SortStrings returns a new slice with versions in ascending order.
func SortStrings(versions []string) []string {
	return SortBy(versions, identity, Ascending)
}

// RSortStrings returns a new slice with versions in descending order.
func RSortStrings(versions []string) []string {
	return SortBy(versions, identity, Descending)
}

// SortInPlace reorders versions in the requested direction.
func SortInPlace(versions []string, dir Direction) {
	copy(versions, SortBy(versions, identity, dir))
}

// SortBy orders arbitrary items by the version string key derives from each
// one. key is called exactly once per item. The input slice is not modified.
func SortBy[T any](items []T, key func(T) string, dir Direction) []T {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = key(it)
	}

	out := make([]T, len(items))
	for i, idx := range SortIndices(keys, dir) {
		out[i] = items[idx]
	}
	return out
}

func identity(s string) string { return s }
