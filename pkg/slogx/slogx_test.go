package slogx_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/stash/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{Service: "stash", Version: "test", Env: "test", Level: "debug", Output: &buf})
	return logger, &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestRedactSecrets(t *testing.T) {
	logger, buf := newBufferLogger(t)

	logger.Info("login",
		"name", "alice",
		"password", "hunter2",
		"Passphrase", "swordfish",
		"session_token", "eyJ...",
		"argon_salt", "pepper",
		"set_cookie", "STASH_SESSION=abc",
		"session_fp", "0011223344556677",
		slog.Group("req", "client_secret", "s3cr3t", "path", "/v1"),
	)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	line := lines[0]

	require.Equal(t, "alice", line["name"])
	require.Equal(t, slogx.Redacted, line["password"])
	require.Equal(t, slogx.Redacted, line["Passphrase"])
	require.Equal(t, slogx.Redacted, line["session_token"])
	require.Equal(t, slogx.Redacted, line["argon_salt"])
	require.Equal(t, slogx.Redacted, line["set_cookie"])
	require.Equal(t, "0011223344556677", line["session_fp"])

	group := line["req"].(map[string]any)
	require.Equal(t, slogx.Redacted, group["client_secret"])
	require.Equal(t, "/v1", group["path"])

	require.NotContains(t, buf.String(), "hunter2")
	require.NotContains(t, buf.String(), "swordfish")
}

func TestLevelFiltering(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{Level: "warn", Format: "text", Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestHTTPMiddleware(t *testing.T) {
	logger, buf := newBufferLogger(t)

	var ctxLogger *slog.Logger
	h := slogx.HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = slogx.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/clips/42", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.NotNil(t, ctxLogger)
	reqID := rec.Header().Get(slogx.RequestIDHeader)
	require.Len(t, reqID, 26)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	require.Equal(t, "http_request", lines[0]["msg"])
	require.Equal(t, reqID, lines[0]["req_id"])
	require.Equal(t, float64(http.StatusTeapot), lines[0]["status"])
	require.Equal(t, "/v1/clips/42", lines[0]["path"])
}

func TestHTTPMiddleware_ReusesValidRequestID(t *testing.T) {
	logger, _ := newBufferLogger(t)
	h := slogx.HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(slogx.RequestIDHeader, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", rec.Header().Get(slogx.RequestIDHeader))
}

func TestFromContext_Default(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Equal(t, slog.Default(), slogx.FromContext(req.Context()))
}
