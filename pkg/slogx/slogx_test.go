package slogx_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/arith/pkg/idx"
	"github.com/aussiebroadwan/arith/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		env   string
		want  slog.Level
	}{
		{"explicit wins over env", "error", "development", slog.LevelError},
		{"warning alias", "WARNING", "", slog.LevelWarn},
		{"development defaults to debug", "", "development", slog.LevelDebug},
		{"test defaults to info", "", "test", slog.LevelInfo},
		{"staging defaults to info", "", "staging", slog.LevelInfo},
		{"production defaults to warn", "", "production", slog.LevelWarn},
		{"unknown env defaults to info", "", "qa", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, slogx.ResolveLevel(tt.level, tt.env))
		})
	}
}

func TestNewWritesServiceAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{
		Service: "arith",
		Version: "test",
		Env:     "test",
		Format:  "json",
		Output:  &buf,
	})

	logger.Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "arith", entry["service"])
	require.Equal(t, "test", entry["env"])
}

func TestHTTPMiddlewarePropagatesRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var seen *slog.Logger
	h := slogx.HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = slogx.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	const reqID = "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"
	req := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	req.Header.Set(slogx.RequestIDHeader, reqID)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.NotNil(t, seen)
	require.Equal(t, reqID, rec.Header().Get(slogx.RequestIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "http_request", entry["msg"])
	require.Equal(t, reqID, entry["req_id"])
	require.EqualValues(t, http.StatusTeapot, entry["status"])
}

func TestHTTPMiddlewareGeneratesRequestID(t *testing.T) {
	base := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	h := slogx.HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	t.Run("missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := idx.Parse(rec.Header().Get(slogx.RequestIDHeader))
		require.NoError(t, err)
	})

	t.Run("replaces a value that is not a ULID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(slogx.RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		got := rec.Header().Get(slogx.RequestIDHeader)
		require.NotEqual(t, "req-123", got)
		_, err := idx.Parse(got)
		require.NoError(t, err)
	})
}
