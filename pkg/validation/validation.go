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

// Package validation provides input precondition checks shared by the
// version comparison surfaces (library, CLI, and HTTP API).
package validation

import (
	"fmt"
	"strings"

	apperrors "github.com/NVIDIA/vercmp/pkg/errors"
)

// VersionNotBlank rejects an empty or whitespace-only version string.
// The side argument names the offending input (e.g. "left", "right") and is
// included in both the message and the error context. The returned error is
// a StructuredError with code INVALID_REQUEST whose message always contains
// the literal "version cannot be blank".
func VersionNotBlank(side, value string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return apperrors.NewWithContext(
		apperrors.ErrCodeInvalidRequest,
		fmt.Sprintf("%s version cannot be blank", side),
		map[string]any{"side": side},
	)
}

// NotBlank rejects an empty or whitespace-only string for the named argument.
func NotBlank(name, value string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return apperrors.New(
		apperrors.ErrCodeInvalidRequest,
		fmt.Sprintf("%s cannot be blank", name),
	)
}
