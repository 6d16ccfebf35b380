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
	"strconv"
)

// Kind identifies which variant a Component holds.
type Kind uint8

const (
	// KindText is a run of ASCII letters (optionally led by a single '-'),
	// or a digit run too large for a 32-bit accumulator.
	KindText Kind = iota
	// KindNumber is a digit run that fits in 32 bits.
	KindNumber
)

// String returns "number" or "text".
func (k Kind) String() string {
	if k == KindNumber {
		return "number"
	}
	return "text"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "number":
		*k = KindNumber
	case "text":
		*k = KindText
	default:
		return fmt.Errorf("unknown component kind: %q", string(b))
	}
	return nil
}

// Component is one typed token of a version string. Only the field matching
// Kind is meaningful. Text components slice the tokenized input and share
// its memory.
type Component struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Number uint32 `json:"number,omitempty" yaml:"number,omitempty"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Number returns a numeric component.
func Number(v uint32) Component {
	return Component{Kind: KindNumber, Number: v}
}

// Text returns a text component.
func Text(s string) Component {
	return Component{Kind: KindText, Text: s}
}

// IsNumber reports whether c holds a number.
func (c Component) IsNumber() bool {
	return c.Kind == KindNumber
}

// String renders numbers in decimal and text verbatim.
func (c Component) String() string {
	if c.Kind == KindNumber {
		return strconv.FormatUint(uint64(c.Number), 10)
	}
	return c.Text
}

// Version is the tokenized form of one input string together with its
// position in the batch it came from.
type Version struct {
	Index      int         `json:"index" yaml:"index"`
	Components []Component `json:"components" yaml:"components"`
}
