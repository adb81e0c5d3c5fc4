package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-ai/helpdesk/internal/interfaces/http/handlers/testutil"
	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

func newTestEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString(constants.ContextKeyRequestID)})
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func doRequest(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAPIKey(t *testing.T) {
	auth := NewAuthMiddleware("secret", testutil.NewMockLogger())
	r := newTestEngine(auth.RequireAPIKey())

	tests := []struct {
		name     string
		headers  map[string]string
		wantCode int
	}{
		{"missing key", nil, http.StatusUnauthorized},
		{"wrong key", map[string]string{constants.HeaderAPIKey: "nope"}, http.StatusForbidden},
		{"prefix of key", map[string]string{constants.HeaderAPIKey: "secre"}, http.StatusForbidden},
		{"valid key", map[string]string{constants.HeaderAPIKey: "secret"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/ping", tt.headers)
			assert.Equal(t, tt.wantCode, w.Code)

			if tt.wantCode != http.StatusOK {
				var resp testutil.ErrorResponse
				require.NoError(t, testutil.ParseResponse(w, &resp))
				assert.False(t, resp.Success)
				require.NotNil(t, resp.Error)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newTestEngine(RequestID())

	t.Run("echoes caller id", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/ping", map[string]string{constants.HeaderXRequestID: "req-123"})
		assert.Equal(t, "req-123", w.Header().Get(constants.HeaderXRequestID))

		var body map[string]string
		require.NoError(t, testutil.ParseResponse(w, &body))
		assert.Equal(t, "req-123", body["request_id"])
	})

	t.Run("generates id", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/ping", nil)
		assert.Len(t, w.Header().Get(constants.HeaderXRequestID), 36)
	})
}

type fakeLimiter struct {
	allowed   bool
	err       error
	remaining int64
	keys      []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	f.keys = append(f.keys, key)
	return f.allowed, f.err
}

func (f *fakeLimiter) GetRemaining(_ context.Context, _ string) (int64, error) {
	return f.remaining, nil
}

func (f *fakeLimiter) Reset(_ context.Context, _ string) error {
	return nil
}

func TestRateLimiter(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		limiter := &fakeLimiter{allowed: true, remaining: 4}
		r := newTestEngine(NewRateLimiter(limiter, testutil.NewMockLogger()).Limit())

		w := doRequest(r, http.MethodGet, "/ping", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
		require.Len(t, limiter.keys, 1)
		assert.Contains(t, limiter.keys[0], "ip:")
	})

	t.Run("rejected", func(t *testing.T) {
		limiter := &fakeLimiter{allowed: false}
		r := newTestEngine(NewRateLimiter(limiter, testutil.NewMockLogger()).Limit())

		w := doRequest(r, http.MethodGet, "/ping", nil)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("store failure lets request through", func(t *testing.T) {
		limiter := &fakeLimiter{err: errors.New("redis down")}
		r := newTestEngine(NewRateLimiter(limiter, testutil.NewMockLogger()).Limit())

		w := doRequest(r, http.MethodGet, "/ping", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRecovery(t *testing.T) {
	r := newTestEngine(RequestID(), Recovery(testutil.NewMockLogger()))

	w := doRequest(r, http.MethodGet, "/panic", map[string]string{constants.HeaderAPIKey: "secret"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp testutil.ErrorResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestRedactedHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(constants.HeaderAPIKey, "secret")

	headers := redactedHeaders(req)

	assert.Contains(t, headers, "X-Api-Key: *")
	for _, h := range headers {
		assert.NotContains(t, h, "secret")
	}
}

func TestCORS(t *testing.T) {
	r := newTestEngine(CORS([]string{"https://agents.example.com/", " "}))

	w := doRequest(r, http.MethodOptions, "/ping", map[string]string{"Origin": "https://agents.example.com"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://agents.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), constants.HeaderAPIKey)
	assert.Equal(t, "Origin", w.Header().Get("Vary"))

	w = doRequest(r, http.MethodGet, "/ping", map[string]string{"Origin": "https://evil.example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Methods"))

	w = doRequest(r, http.MethodGet, "/ping", nil)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	r := newTestEngine(SecurityHeaders())

	w := doRequest(r, http.MethodGet, "/ping", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestLogger_LogsRouteTemplateWithoutQuery(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithSlog(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	r := gin.New()
	r.Use(Logger(log))
	r.GET("/tickets/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	doRequest(r, http.MethodGet, "/tickets/42?q=client@example.com", nil)

	out := buf.String()
	assert.Contains(t, out, `"route":"/tickets/:id"`)
	assert.Contains(t, out, `"id":"42"`)
	assert.Contains(t, out, `"status":404`)
	assert.NotContains(t, out, "client@example.com")
}

func TestIsBrokenConnection(t *testing.T) {
	wrapped := &net.OpError{Op: "write", Err: os.NewSyscallError("write", syscall.EPIPE)}

	assert.True(t, isBrokenConnection(wrapped))
	assert.True(t, isBrokenConnection(syscall.ECONNRESET))
	assert.False(t, isBrokenConnection(errors.New("boom")))
	assert.False(t, isBrokenConnection("boom"))
}
