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
	"testing"
)

func BenchmarkCompare(b *testing.B) {
	pairs := [][2]string{
		{"1", "2"},
		{"1.0", "1"},
		{"2.0.1", "1.6.12"},
		{"1.1.1-SNAPSHOT", "1.1.1-SNAPSHOT"},
		{"5.4.2.Final", "5.4.1.Final"},
		{"a.10.1", "a.2.1"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := pairs[i%len(pairs)]
		_, _ = Compare(p[0], p[1])
	}
}

func BenchmarkCompareNumeric(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Compare("1.2.3", "1.2.4")
	}
}

func BenchmarkCompareLongNumeric(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Compare("1.18446744073709551616", "1.18446744073709551615")
	}
}

func BenchmarkCompareAlpha(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Compare("1.0.0-Alpha", "1.0.0-Beta")
	}
}

func BenchmarkHigher(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Higher("1.0.0-SNAPSHOT", "2.0.0-SNAPSHOT")
	}
}
