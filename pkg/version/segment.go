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
	"math/big"
	"strings"
)

// segmentKind tags a segment as numeric or alphabetic. There are exactly
// two variants; keeping the pairwise rule in one place (compareSegments)
// makes it exhaustively testable.
type segmentKind int

const (
	segmentNumeric segmentKind = iota
	segmentAlpha
)

// segment is one delimiter-bounded token of a version string.
// Numeric segments carry their integer magnitude with unbounded precision
// so that a 20-digit build number compares correctly; alpha segments keep
// the original token text and compare case-insensitively.
type segment struct {
	kind segmentKind
	num  *big.Int
	text string
}

// newSegment classifies a single non-empty token. A token is numeric iff
// every character is an ASCII digit (leading zeros allowed); anything else,
// including mixed tokens like "rc1", is alpha.
func newSegment(token string) segment {
	if isNumericToken(token) {
		num, _ := new(big.Int).SetString(token, 10)
		return segment{kind: segmentNumeric, num: num, text: token}
	}
	return segment{kind: segmentAlpha, text: token}
}

func isNumericToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// compareSegments compares two segments and returns -1, 0, or 1.
// Numeric-vs-numeric compares integer magnitude ("10" > "2", "042" == "42").
// Every other pairing, including numeric-vs-alpha, falls back to a
// case-insensitive comparison of the original token strings ("3" < "b").
func compareSegments(a, b segment) int {
	if a.kind == segmentNumeric && b.kind == segmentNumeric {
		return a.num.Cmp(b.num)
	}
	return compareFold(a.text, b.text)
}

// compareFold compares two tokens codepoint-by-codepoint with ASCII case
// folding. Folding is ASCII-only on purpose: tokens are compared under the
// engine's contract, not locale rules.
func compareFold(a, b string) int {
	return sign(strings.Compare(asciiLower(a), asciiLower(b)))
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// sign narrows an arbitrary comparison result to {-1, 0, 1}.
func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
