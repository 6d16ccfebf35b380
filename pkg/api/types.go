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

package api

import (
	"github.com/NVIDIA/version-sorter/pkg/versionsort"
)

// SortRequest is the body of POST /v1/sort.
type SortRequest struct {
	Versions []string              `json:"versions" yaml:"versions"`
	Order    versionsort.Direction `json:"order,omitempty" yaml:"order,omitempty"`
}

// SortResponse returns the sorted versions and, for each output position,
// the index of that version in the request.
type SortResponse struct {
	Order    versionsort.Direction `json:"order" yaml:"order"`
	Versions []string              `json:"versions" yaml:"versions"`
	Indices  []uint32              `json:"indices" yaml:"indices"`
}

// CompareRequest is the body of POST /v1/compare.
type CompareRequest struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

// CompareResponse carries the comparison result: -1 when A sorts first,
// 1 when B sorts first, 0 when they are equivalent.
type CompareResponse struct {
	A      string `json:"a" yaml:"a"`
	B      string `json:"b" yaml:"b"`
	Result int    `json:"result" yaml:"result"`
}

// TokenizeRequest is the body of POST /v1/tokenize.
type TokenizeRequest struct {
	Versions []string `json:"versions" yaml:"versions"`
}

// TokenizeResult is the component list of one input.
type TokenizeResult struct {
	Input      string                  `json:"input" yaml:"input"`
	Components []versionsort.Component `json:"components" yaml:"components"`
}

// TokenizeResponse lists results in request order.
type TokenizeResponse struct {
	Results []TokenizeResult `json:"results" yaml:"results"`
}
