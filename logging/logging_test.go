package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level string, format string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	InitLoggerTo(&buf, level, format)
	t.Cleanup(func() { InitLogger("info", "json") })
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t, "warn", "text")
	GetLogger().Info("quiet")
	GetLogger().Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestRequestIDInContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", GetRequestID(ctx))
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestCombinedMiddleware(t *testing.T) {
	buf := captureLogs(t, "info", "json")

	var seen string
	handler := CombinedMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/songs", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert := assert.New(t)
	assert.Equal("req-1", seen)
	assert.Equal("req-1", w.Header().Get("X-Request-ID"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal("http_request", entry["msg"])
	assert.Equal("req-1", entry["request_id"])
	assert.Equal(float64(http.StatusTeapot), entry["status_code"])
	assert.Equal("/api/songs", entry["path"])
}

func TestMiddlewareGeneratesRequestID(t *testing.T) {
	captureLogs(t, "error", "json")
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}
