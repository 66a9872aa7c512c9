package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harmonyminds/internal/logging"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
	logging.SetGlobalLogger(logging.New(logging.Config{Level: "debug", Output: &buf}))
	return &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestRequestLoggingAssignsRequestID(t *testing.T) {
	buf := captureLogs(t)

	var seen string
	h := RequestLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))

	entry := lastEntry(t, buf)
	assert.Equal(t, "HTTP request completed", entry["message"])
	assert.Equal(t, "warn", entry["level"])
	assert.EqualValues(t, http.StatusTeapot, entry["status_code"])
	assert.Equal(t, seen, entry["request_id"])
}

func TestRequestLoggingKeepsIncomingID(t *testing.T) {
	captureLogs(t)
	h := RequestLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestLoggingReportsSessionAndRedirect(t *testing.T) {
	buf := captureLogs(t)
	h := RequestLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// handlers further down attach the session to their own copy of the context
		_ = logging.WithSessionID(r.Context(), "sess-42")
		w.Header().Set("Location", "/results")
		w.WriteHeader(http.StatusSeeOther)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/analyze", nil))

	entry := lastEntry(t, buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "sess-42", entry["session_id"])
	assert.Equal(t, "/results", entry["location"])
	assert.EqualValues(t, http.StatusSeeOther, entry["status_code"])
	assert.Nil(t, entry["sessionless"])
}

func TestRequestLoggingCountsBytesWithoutSession(t *testing.T) {
	buf := captureLogs(t)
	h := RequestLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))

	entry := lastEntry(t, buf)
	assert.EqualValues(t, 5, entry["bytes"])
	assert.EqualValues(t, http.StatusOK, entry["status_code"])
	assert.Equal(t, true, entry["sessionless"])
	assert.Nil(t, entry["location"])
}

func TestRequestLoggingReplacesOversizedID(t *testing.T) {
	captureLogs(t)
	h := RequestLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", 200))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
}

func TestRecovery(t *testing.T) {
	buf := captureLogs(t)
	h := Recovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/results", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entry := lastEntry(t, buf)
	assert.Equal(t, "Recovered from panic", entry["message"])
	assert.Equal(t, "boom", entry["panic"])
	assert.Contains(t, entry["stack"], "runtime/debug.Stack")
}

func TestSameOrigin(t *testing.T) {
	captureLogs(t)
	h := SameOrigin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name    string
		method  string
		origin  string
		referer string
		want    int
	}{
		{"get from anywhere", http.MethodGet, "https://evil.example", "", http.StatusNoContent},
		{"same origin post", http.MethodPost, "http://127.0.0.1:5173", "", http.StatusNoContent},
		{"foreign origin post", http.MethodPost, "https://evil.example", "", http.StatusForbidden},
		{"foreign referer post", http.MethodPost, "", "https://evil.example/page", http.StatusForbidden},
		{"same referer post", http.MethodPost, "null", "http://127.0.0.1:5173/analyze", http.StatusNoContent},
		{"no headers post", http.MethodPost, "", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://127.0.0.1:5173/analyze", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
