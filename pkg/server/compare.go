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

package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/NVIDIA/vercmp/pkg/errors"
	"github.com/NVIDIA/vercmp/pkg/serializer"
	"github.com/NVIDIA/vercmp/pkg/version"
)

// handleCompare handles GET and POST /v1/compare.
// GET takes left and right query parameters; POST takes a JSON body.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest

	switch r.Method {
	case http.MethodGet:
		req.Left = r.URL.Query().Get("left")
		req.Right = r.URL.Query().Get("right")
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
				"invalid request body", false, map[string]any{"error": err.Error()})
			return
		}
	default:
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"method not allowed", false, nil)
		return
	}

	result, err := version.Compare(req.Left, req.Right)
	if err != nil {
		writeComparisonError(w, r, err)
		return
	}

	relation := relationFor(result)
	comparisonsTotal.WithLabelValues(relation).Inc()

	higher := req.Left
	if result < 0 {
		higher = req.Right
	}

	slog.Debug("compared versions",
		"left", req.Left,
		"right", req.Right,
		"result", result,
	)

	serializer.RespondJSON(w, http.StatusOK, CompareResponse{
		Left:     req.Left,
		Right:    req.Right,
		Result:   result,
		Relation: relation,
		Higher:   higher,
	})
}

// handleHighest handles POST /v1/highest, picking the highest of a version list.
func (s *Server) handleHighest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"method not allowed", false, nil)
		return
	}

	var req HighestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"invalid request body", false, map[string]any{"error": err.Error()})
		return
	}

	if len(req.Versions) == 0 {
		WriteError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"no versions provided", false, nil)
		return
	}

	if len(req.Versions) > s.config.MaxBulkVersions {
		WriteError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"too many versions", false, map[string]any{
				"count": len(req.Versions),
				"limit": s.config.MaxBulkVersions,
			})
		return
	}

	highest, err := version.Highest(req.Versions...)
	if err != nil {
		writeComparisonError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HighestResponse{
		Highest: highest,
		Count:   len(req.Versions),
	})
}

// writeComparisonError maps comparison engine errors to HTTP responses.
// Validation failures (blank versions) are client errors; anything else
// is unexpected and reported as internal.
func writeComparisonError(w http.ResponseWriter, r *http.Request, err error) {
	var se *apperrors.StructuredError
	if errors.As(err, &se) && se.Code == apperrors.ErrCodeInvalidRequest {
		WriteError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			se.Message, false, se.Context)
		return
	}

	slog.Error("comparison failed", "error", err)
	WriteError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
		"comparison failed", true, nil)
}

func relationFor(result int) string {
	switch {
	case result > 0:
		return "higher"
	case result < 0:
		return "lower"
	default:
		return "same"
	}
}
