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
)

// Versions defines a version string collection (slice) type for sorting purposes.
// Ordering follows Compare; entries Compare rejects (blank or delimiter-only)
// order before valid ones, and two such entries keep plain string order so the
// sort stays deterministic.
type Versions []string

// Len returns the length of the collection.
func (versions Versions) Len() int {
	return len(versions)
}

// Less returns true if the collection item behind the first specified index
// orders before the collection item behind the second provided index.
func (versions Versions) Less(firstIndex, secondIndex int) bool {
	if versions == nil ||
		firstIndex < 0 ||
		firstIndex >= len(versions) ||
		secondIndex < 0 ||
		secondIndex >= len(versions) {
		return false
	}

	first, second := versions[firstIndex], versions[secondIndex]
	firstOK, secondOK := isComparable(first), isComparable(second)
	switch {
	case !firstOK && !secondOK:
		return first < second
	case !firstOK:
		return true
	case !secondOK:
		return false
	}

	cmp, err := Compare(first, second)
	if err != nil {
		return false
	}
	return cmp < 0
}

// Swap replaces the collection items behind the specified indices with each other.
func (versions Versions) Swap(firstIndex, secondIndex int) {
	if versions == nil ||
		firstIndex < 0 ||
		firstIndex >= len(versions) ||
		secondIndex < 0 ||
		secondIndex >= len(versions) {
		return
	}

	versions[firstIndex], versions[secondIndex] = versions[secondIndex], versions[firstIndex]
}

// Highest returns the highest of the provided version strings.
// On ties the earliest argument wins. Returns an error when no versions are
// provided or when any entry is invalid.
func Highest(versions ...string) (string, error) {
	return pick(versions, true)
}

// Lowest returns the lowest of the provided version strings.
// On ties the earliest argument wins. Returns an error when no versions are
// provided or when any entry is invalid.
func Lowest(versions ...string) (string, error) {
	return pick(versions, false)
}

func pick(versions []string, wantHighest bool) (string, error) {
	if len(versions) == 0 {
		return "", fmt.Errorf("no versions provided")
	}

	best := versions[0]
	for _, v := range versions[1:] {
		cmp, err := Compare(v, best)
		if err != nil {
			return "", err
		}
		if (wantHighest && cmp > 0) || (!wantHighest && cmp < 0) {
			best = v
		}
	}

	// Validate the first entry even when it was never compared (single item).
	if len(versions) == 1 {
		if _, err := Compare(best, best); err != nil {
			return "", err
		}
	}

	return best, nil
}

// isComparable reports whether Compare accepts the string as a version.
func isComparable(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	_, err := tokenize("candidate", s)
	return err == nil
}
