package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	s := newTestServer(t)

	t.Run("generates when missing", func(t *testing.T) {
		var seen string
		handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(contextKeyRequestID).(string)
		})

		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/compare", nil))

		require.NotEmpty(t, seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get("X-Request-Id"))
	})

	t.Run("preserves valid id", func(t *testing.T) {
		id := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/v1/compare", nil)
		req.Header.Set("X-Request-Id", id)

		rec := httptest.NewRecorder()
		s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {})(rec, req)

		assert.Equal(t, id, rec.Header().Get("X-Request-Id"))
	})

	t.Run("replaces invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/compare", nil)
		req.Header.Set("X-Request-Id", "not-a-uuid")

		rec := httptest.NewRecorder()
		s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {})(rec, req)

		got := rec.Header().Get("X-Request-Id")
		require.NotEqual(t, "not-a-uuid", got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 2
	s := NewServer(cfg)

	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Burst of 2 allowed, third rejected.
	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/compare", nil))
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusOK, statuses[1])
	assert.Equal(t, http.StatusTooManyRequests, statuses[2])
}

func TestRateLimitHeaders(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {})(
		rec, httptest.NewRequest(http.MethodGet, "/v1/compare", nil))

	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := newTestServer(t)

	handler := s.panicRecoveryMiddleware(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/compare", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestVersionMiddleware(t *testing.T) {
	s := newTestServer(t)

	t.Run("default version", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {})(
			rec, httptest.NewRequest(http.MethodGet, "/v1/compare", nil))
		assert.Equal(t, DefaultAPIVersion, rec.Header().Get("X-API-Version"))
	})

	t.Run("vendor mime negotiation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/compare", nil)
		req.Header.Set("Accept", "application/vnd.nvidia.vercmp.v1+json")

		rec := httptest.NewRecorder()
		s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {})(rec, req)
		assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))
	})

	t.Run("unknown version falls back", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/compare", nil)
		req.Header.Set("Accept", "application/vnd.nvidia.vercmp.v9+json")

		rec := httptest.NewRecorder()
		s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {})(rec, req)
		assert.Equal(t, DefaultAPIVersion, rec.Header().Get("X-API-Version"))
	})
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK) // ignored

	assert.Equal(t, http.StatusTeapot, rw.Status())
	assert.Equal(t, http.StatusTeapot, rec.Code)

	_, err := rw.Write([]byte("body"))
	require.NoError(t, err)
	assert.Equal(t, "body", rec.Body.String())
}

func TestResponseWriterImplicitHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	_, err := rw.Write([]byte("ok"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rw.Status())
}
