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
	"reflect"
	"sort"
	"testing"
)

func TestVersionsSort(t *testing.T) {
	tests := []struct {
		name  string
		input Versions
		want  Versions
	}{
		{
			name:  "numeric ordering",
			input: Versions{"1.10.0", "1.2.0", "1.9.0"},
			want:  Versions{"1.2.0", "1.9.0", "1.10.0"},
		},
		{
			name:  "length tie break last",
			input: Versions{"1.0.0", "1", "1.0"},
			want:  Versions{"1", "1.0", "1.0.0"},
		},
		{
			name:  "qualifiers sort as plain segments",
			input: Versions{"1.0.0-Beta", "1.0.0-alpha", "1.0.0"},
			want:  Versions{"1.0.0", "1.0.0-alpha", "1.0.0-Beta"},
		},
		{
			name:  "invalid entries order first",
			input: Versions{"2.0.0", "", "1.0.0"},
			want:  Versions{"", "1.0.0", "2.0.0"},
		},
		{
			name:  "empty collection",
			input: Versions{},
			want:  Versions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make(Versions, len(tt.input))
			copy(got, tt.input)
			sort.Sort(got)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sorted %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVersionsGuards(t *testing.T) {
	vs := Versions{"1.0.0", "2.0.0"}

	if vs.Less(-1, 1) {
		t.Error("out-of-range first index must not order")
	}
	if vs.Less(0, 5) {
		t.Error("out-of-range second index must not order")
	}

	// Out-of-range swap is a no-op.
	vs.Swap(0, 9)
	if vs[0] != "1.0.0" {
		t.Errorf("swap with invalid index mutated the slice: %v", vs)
	}

	var nilVersions Versions
	if nilVersions.Less(0, 0) {
		t.Error("nil collection must not order")
	}
	nilVersions.Swap(0, 0)
}

func TestHighest(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		want     string
		wantErr  bool
	}{
		{name: "simple", versions: []string{"1.0.0", "2.0.0", "1.9.9"}, want: "2.0.0"},
		{name: "single", versions: []string{"1.0.0"}, want: "1.0.0"},
		{name: "tie keeps earliest", versions: []string{"042", "42"}, want: "042"},
		{name: "length tie break", versions: []string{"1", "1.0"}, want: "1.0"},
		{name: "empty list", versions: nil, wantErr: true},
		{name: "invalid entry", versions: []string{"1.0.0", " "}, wantErr: true},
		{name: "invalid single", versions: []string{"..."}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Highest(tt.versions...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Highest(%v) error = %v, wantErr %v", tt.versions, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Highest(%v) = %q, want %q", tt.versions, got, tt.want)
			}
		})
	}
}

func TestLowest(t *testing.T) {
	got, err := Lowest("2.0.0", "1.0.1", "1.1.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1.0.1" {
		t.Errorf("Lowest = %q, want %q", got, "1.0.1")
	}

	if _, err := Lowest(); err == nil {
		t.Error("expected error for empty list")
	}
}
