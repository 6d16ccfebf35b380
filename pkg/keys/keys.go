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

package keys

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"
	"github.com/tidwall/gjson"

	"github.com/NVIDIA/version-sorter/pkg/errors"
)

// DefaultTag is the key used for image references without a tag.
const DefaultTag = "latest"

// OCIScheme is accepted and stripped in front of image references.
const OCIScheme = "oci://"

// Func returns the sort key for an entry.
type Func func(entry string) (string, error)

// Identity keys an entry by itself.
func Identity(entry string) (string, error) {
	return entry, nil
}

// JSONPath returns a Func that keys JSON entries by the value at path.
// Non-string values key by their raw JSON text.
func JSONPath(path string) Func {
	return func(entry string) (string, error) {
		if !gjson.Valid(entry) {
			return "", errors.New(errors.ErrCodeInvalidRequest, "entry is not valid JSON")
		}
		res := gjson.Get(entry, path)
		if !res.Exists() {
			return "", errors.NewWithContext(errors.ErrCodeInvalidRequest, "key path not found",
				map[string]any{"path": path})
		}
		if res.Type == gjson.String {
			return res.String(), nil
		}
		return res.Raw, nil
	}
}

// Image is a parsed container image reference.
type Image struct {
	// Registry is the registry host, e.g. "docker.io" or "localhost:5000".
	Registry string
	// Repository is the path within the registry, e.g. "library/nginx".
	Repository string
	// Tag is the image tag. Empty when the reference has none.
	Tag string
	// Digest is set for references pinned by digest.
	Digest string
}

// ParseImage parses an image reference such as "nginx:1.25",
// "ghcr.io/org/app:v1.2.3" or "oci://localhost:5000/app:1.0".
func ParseImage(s string) (*Image, error) {
	ref, err := reference.ParseNormalizedNamed(strings.TrimPrefix(strings.TrimSpace(s), OCIScheme))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid image reference", err)
	}

	img := &Image{
		Registry:   reference.Domain(ref),
		Repository: reference.Path(ref),
	}
	if tagged, ok := ref.(reference.Tagged); ok {
		img.Tag = tagged.Tag()
	}
	if digested, ok := ref.(reference.Digested); ok {
		img.Digest = digested.Digest().String()
	}
	return img, nil
}

// ImageTag keys an image reference by its tag, defaulting to "latest".
// References pinned only by digest carry no orderable version and are rejected.
func ImageTag(entry string) (string, error) {
	img, err := ParseImage(entry)
	if err != nil {
		return "", err
	}
	if img.Tag != "" {
		return img.Tag, nil
	}
	if img.Digest != "" {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest, "image reference has digest but no tag",
			map[string]any{"reference": entry})
	}
	return DefaultTag, nil
}

// Extract applies fn to every entry. A nil fn is Identity.
func Extract(entries []string, fn Func) ([]string, error) {
	if fn == nil {
		fn = Identity
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		k, err := fn(e)
		if err != nil {
			return nil, errors.WrapWithContext(errors.CodeOf(err), fmt.Sprintf("entry %d", i), err,
				map[string]any{"index": i})
		}
		out[i] = k
	}
	return out, nil
}
