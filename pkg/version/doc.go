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

// Package version implements a total, deterministic ordering over free-form
// version strings such as "2.0.1", "1.1.1-SNAPSHOT", or "5.4.1.Final".
//
// This is not a SemVer implementation. There is no pre-release or build
// metadata section, no range matching, and no normalization beyond
// tokenization: strings are split on runs of non-alphanumeric ASCII
// characters and the resulting segments compared left to right. All-digit
// segments compare by integer magnitude (unbounded precision, so leading
// zeros and 20-digit build numbers are fine); any segment pair involving a
// non-numeric token compares case-insensitively as strings. Qualifiers like
// SNAPSHOT, alpha, or Final get no special precedence.
//
// When all shared segments match, the version with more segments is higher,
// even when the extra segments are zeros: "1.0" > "1". Consumers depend on
// that ordering; do not "fix" it to SemVer semantics.
//
// Every call is a pure computation over its inputs and safe for concurrent
// use without coordination.
package version
