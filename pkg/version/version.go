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

package version

import (
	"fmt"
	"strings"

	apperrors "github.com/NVIDIA/vercmp/pkg/errors"
	"github.com/NVIDIA/vercmp/pkg/validation"
)

// Compare compares two free-form version strings (e.g. "2.0.1",
// "1.1.1-SNAPSHOT", "5.4.1.Final") and returns -1, 0, or 1. The result is
// always normalized to that ternary range.
//
// Both strings are split into tokens on runs of non-alphanumeric ASCII
// characters and compared segment by segment, most significant first,
// short-circuiting on the first difference. All-digit tokens compare by
// integer magnitude with unbounded precision; any pairing that involves a
// non-numeric token compares the original token strings case-insensitively.
//
// When all shared segments are equal, the version with more segments is
// strictly greater regardless of the extra segments' values, so
// "1.0" > "1" and "1.0.0.0" > "1.0.0". This deliberately diverges from
// SemVer's trailing-zero equivalence and is relied upon by callers.
//
// Blank input (empty or whitespace-only), or input with no alphanumeric
// segments at all, yields an INVALID_REQUEST error whose message contains
// "version cannot be blank".
func Compare(left, right string) (int, error) {
	if err := validateInputs(left, right); err != nil {
		return 0, err
	}

	leftSegs, err := tokenize("left", left)
	if err != nil {
		return 0, err
	}
	rightSegs, err := tokenize("right", right)
	if err != nil {
		return 0, err
	}

	n := min(len(leftSegs), len(rightSegs))
	for i := 0; i < n; i++ {
		if cmp := compareSegments(leftSegs[i], rightSegs[i]); cmp != 0 {
			return cmp, nil
		}
	}

	// All shared segments equal; the longer sequence wins outright.
	switch {
	case len(leftSegs) > len(rightSegs):
		return 1, nil
	case len(leftSegs) < len(rightSegs):
		return -1, nil
	default:
		return 0, nil
	}
}

// Higher returns the higher of the two versions. On equality the left
// argument is returned; callers must not assume identity beyond that rule.
func Higher(left, right string) (string, error) {
	cmp, err := Compare(left, right)
	if err != nil {
		return "", err
	}
	if cmp >= 0 {
		return left, nil
	}
	return right, nil
}

// IsStrictlyHigher reports whether left is strictly higher than right.
func IsStrictlyHigher(left, right string) (bool, error) {
	cmp, err := Compare(left, right)
	return cmp > 0, err
}

// IsHigherOrSame reports whether left is higher than or the same as right.
func IsHigherOrSame(left, right string) (bool, error) {
	cmp, err := Compare(left, right)
	return err == nil && cmp >= 0, err
}

// IsStrictlyLower reports whether left is strictly lower than right.
func IsStrictlyLower(left, right string) (bool, error) {
	cmp, err := Compare(left, right)
	return cmp < 0, err
}

// IsLowerOrSame reports whether left is lower than or the same as right.
func IsLowerOrSame(left, right string) (bool, error) {
	cmp, err := Compare(left, right)
	return err == nil && cmp <= 0, err
}

// IsSame reports whether the two versions compare as equal.
func IsSame(left, right string) (bool, error) {
	cmp, err := Compare(left, right)
	return err == nil && cmp == 0, err
}

// validateInputs rejects blank version strings before any tokenization.
// When both sides are blank the error identifies both.
func validateInputs(left, right string) error {
	leftBlank := strings.TrimSpace(left) == ""
	rightBlank := strings.TrimSpace(right) == ""

	switch {
	case leftBlank && rightBlank:
		return validation.VersionNotBlank("left and right", "")
	case leftBlank:
		return validation.VersionNotBlank("left", left)
	case rightBlank:
		return validation.VersionNotBlank("right", right)
	default:
		return nil
	}
}

// tokenize splits a non-blank version string into its ordered segments.
// Any maximal run of non-alphanumeric ASCII characters is a single boundary,
// so "1..0", "1.-0" and leading/trailing delimiters never produce empty
// tokens. Non-ASCII runes are not delimiters; they stay in their token and
// classify it as alpha. Input that yields no tokens at all (delimiters only)
// is invalid, same as blank input.
func tokenize(side, s string) ([]segment, error) {
	var segs []segment
	start := -1
	for i, r := range s {
		if isDelimiter(r) {
			if start >= 0 {
				segs = append(segs, newSegment(s[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		segs = append(segs, newSegment(s[start:]))
	}

	if len(segs) == 0 {
		return nil, apperrors.NewWithContext(
			apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s version cannot be blank: %q has no alphanumeric segments", side, s),
			map[string]any{"side": side, "value": s},
		)
	}
	return segs, nil
}

// isDelimiter reports whether r is a token boundary: any ASCII character
// that is not a digit or letter.
func isDelimiter(r rune) bool {
	if r >= 128 {
		return false
	}
	switch {
	case r >= '0' && r <= '9':
		return false
	case r >= 'a' && r <= 'z':
		return false
	case r >= 'A' && r <= 'Z':
		return false
	default:
		return true
	}
}
