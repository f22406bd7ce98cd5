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

// Package oci compares container image references by the version encoded in
// their tags. It parses image references the same way registries do and feeds
// the extracted tags to the version comparison engine, so
// "ghcr.io/org/app:1.10.0" is newer than "ghcr.io/org/app:1.9.0".
package oci

import (
	"github.com/distribution/reference"

	apperrors "github.com/NVIDIA/vercmp/pkg/errors"
	"github.com/NVIDIA/vercmp/pkg/version"
)

// TagOf parses an image reference (e.g. "ghcr.io/org/app:1.2.3",
// "nginx:1.25.1") and returns its tag. References without an explicit tag
// (or pinned by digest only) are rejected: there is no version to compare.
func TagOf(imageRef string) (string, error) {
	ref, err := reference.ParseNormalizedNamed(imageRef)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid image reference", err)
	}

	tagged, ok := ref.(reference.Tagged)
	if !ok {
		return "", apperrors.NewWithContext(
			apperrors.ErrCodeInvalidRequest,
			"image reference has no tag",
			map[string]any{"reference": imageRef},
		)
	}

	return tagged.Tag(), nil
}

// CompareTags compares the tags of two image references under the version
// comparison engine and returns -1, 0, or 1. The repositories do not need to
// match; only the tags are compared.
func CompareTags(leftRef, rightRef string) (int, error) {
	leftTag, err := TagOf(leftRef)
	if err != nil {
		return 0, err
	}
	rightTag, err := TagOf(rightRef)
	if err != nil {
		return 0, err
	}
	return version.Compare(leftTag, rightTag)
}
