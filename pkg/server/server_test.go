package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := NewConfig()
	cfg.Name = "vercmp-test"
	cfg.Version = "test"
	// High limits so rate limiting does not interfere with handler tests.
	cfg.RateLimit = 10000
	cfg.RateLimitBurst = 10000
	return NewServer(cfg)
}

func TestHandleCompareGet(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name         string
		left         string
		right        string
		wantResult   int
		wantRelation string
		wantHigher   string
	}{
		{name: "left higher", left: "2.0.1", right: "1.6.12", wantResult: 1, wantRelation: "higher", wantHigher: "2.0.1"},
		{name: "same", left: "1.1.1-SNAPSHOT", right: "1.1.1-SNAPSHOT", wantResult: 0, wantRelation: "same", wantHigher: "1.1.1-SNAPSHOT"},
		{name: "left lower", left: "1.0.1", right: "1.1.1", wantResult: -1, wantRelation: "lower", wantHigher: "1.1.1"},
		{name: "length tie break", left: "1.0", right: "1", wantResult: 1, wantRelation: "higher", wantHigher: "1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := fmt.Sprintf("/v1/compare?left=%s&right=%s", tt.left, tt.right)
			req := httptest.NewRequest(http.MethodGet, url, nil)
			rec := httptest.NewRecorder()

			s.withMiddleware(s.handleCompare)(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var resp CompareResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantResult, resp.Result)
			assert.Equal(t, tt.wantRelation, resp.Relation)
			assert.Equal(t, tt.wantHigher, resp.Higher)
		})
	}
}

func TestHandleComparePost(t *testing.T) {
	s := newTestServer(t)

	body, err := json.Marshal(CompareRequest{Left: "5.4.2.Final", Right: "5.4.1.Final"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/compare", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.withMiddleware(s.handleCompare)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CompareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Result)
	assert.Equal(t, "5.4.2.Final", resp.Higher)
}

func TestHandleCompareBlankVersion(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/compare?left=&right=1.0.0", nil)
	rec := httptest.NewRecorder()

	s.withMiddleware(s.handleCompare)(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrCodeInvalidRequest, resp.Code)
	assert.Contains(t, resp.Message, "version cannot be blank")
	assert.NotEmpty(t, resp.RequestID)
}

func TestHandleCompareMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodDelete, "/v1/compare", nil)
	rec := httptest.NewRecorder()

	s.withMiddleware(s.handleCompare)(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrCodeMethodNotAllowed, resp.Code)
}

func TestHandleCompareBadBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/compare", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	s.withMiddleware(s.handleCompare)(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHighest(t *testing.T) {
	s := newTestServer(t)

	body, err := json.Marshal(HighestRequest{Versions: []string{"1.0.0", "2.0.0", "1.9.9"}})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/highest", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.withMiddleware(s.handleHighest)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HighestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2.0.0", resp.Highest)
	assert.Equal(t, 3, resp.Count)
}

func TestHandleHighestLimits(t *testing.T) {
	s := newTestServer(t)

	t.Run("empty list", func(t *testing.T) {
		body, _ := json.Marshal(HighestRequest{})
		req := httptest.NewRequest(http.MethodPost, "/v1/highest", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		s.withMiddleware(s.handleHighest)(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("too many versions", func(t *testing.T) {
		versions := make([]string, s.config.MaxBulkVersions+1)
		for i := range versions {
			versions[i] = "1.0.0"
		}
		body, _ := json.Marshal(HighestRequest{Versions: versions})
		req := httptest.NewRequest(http.MethodPost, "/v1/highest", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		s.withMiddleware(s.handleHighest)(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, ErrCodeInvalidRequest, resp.Code)
	})

	t.Run("invalid entry", func(t *testing.T) {
		body, _ := json.Marshal(HighestRequest{Versions: []string{"1.0.0", "  "}})
		req := httptest.NewRequest(http.MethodPost, "/v1/highest", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		s.withMiddleware(s.handleHighest)(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/highest", nil)
		rec := httptest.NewRecorder()

		s.withMiddleware(s.handleHighest)(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.handleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestHandleReady(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	s.handleReady(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	s.SetReady(true)
	rec = httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleDefault(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	s.handleDefault(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "vercmp-test")
	assert.Contains(t, rec.Body.String(), "/v1/compare")
}
