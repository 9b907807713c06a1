package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/rezkam/rentdesk/internal/infrastructure/http/middleware"
	"github.com/rezkam/rentdesk/internal/urlstate"
)

func TestMaxHeaderBytes_EnforcesLimit(t *testing.T) {
	// net/http adds ~8KB of slack to MaxHeaderBytes, so a 4KB limit
	// rejects at roughly 12KB.
	srv := NewAPIServer(echoAPI(), nil, ServerConfig{MaxHeaderBytes: 4 * 1024})

	server := httptest.NewUnstartedServer(srv.Handler())
	server.Config.MaxHeaderBytes = srv.server.MaxHeaderBytes
	server.Start()
	defer server.Close()

	t.Run("accepts request within limit", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, server.URL+"/health", nil)
		require.NoError(t, err)

		req.Header.Set("X-Test", strings.Repeat("A", 2*1024))

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err, "request within limit should succeed")
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("rejects request exceeding limit", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, server.URL+"/health", nil)
		require.NoError(t, err)

		req.Header.Set("X-Test", strings.Repeat("A", 20*1024))

		resp, err := http.DefaultClient.Do(req)

		if err != nil {
			t.Logf("server rejected with connection error: %v", err)
			return
		}
		defer resp.Body.Close()

		assert.Equal(t, http.StatusRequestHeaderFieldsTooLarge, resp.StatusCode,
			"expected 431 when headers exceed limit")
	})
}

func TestServerConfig_ApplyDefaults(t *testing.T) {
	t.Run("applies all defaults for zero config", func(t *testing.T) {
		cfg := ServerConfig{}
		cfg.applyDefaults()

		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, DefaultReadTimeout, cfg.ReadTimeout)
		assert.Equal(t, DefaultWriteTimeout, cfg.WriteTimeout)
		assert.Equal(t, DefaultIdleTimeout, cfg.IdleTimeout)
		assert.Equal(t, DefaultReadHeaderTimeout, cfg.ReadHeaderTimeout)
		assert.Equal(t, DefaultMaxHeaderBytes, cfg.MaxHeaderBytes)
		assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.MaxBodyBytes)
	})

	t.Run("keeps session settings", func(t *testing.T) {
		cfg := ServerConfig{SecureCookies: true, SessionTTL: time.Hour}
		cfg.applyDefaults()

		assert.True(t, cfg.SecureCookies)
		assert.Equal(t, time.Hour, cfg.SessionTTL)
	})

	t.Run("preserves non-zero values", func(t *testing.T) {
		cfg := ServerConfig{
			Port:           "9000",
			MaxHeaderBytes: 2048,
			MaxBodyBytes:   4096,
		}
		cfg.applyDefaults()

		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, 2048, cfg.MaxHeaderBytes)
		assert.Equal(t, int64(4096), cfg.MaxBodyBytes)
		// Other fields should get defaults
		assert.Equal(t, DefaultReadTimeout, cfg.ReadTimeout)
	})
}

// echoAPI stands in for the list handlers: it reports the session and
// rewrites the page parameter the way a correcting list page does.
func echoAPI() http.Handler {
	r := chi.NewRouter()
	r.Get("/{kind}", func(w http.ResponseWriter, r *http.Request) {
		urlstate.New(urlstate.NewResponseLocation(w, r)).Set("page", "1")
		_, _ = w.Write([]byte(mw.SessionID(r.Context())))
	})
	return r
}

func TestRouter(t *testing.T) {
	srv := NewAPIServer(echoAPI(), nil, ServerConfig{SessionTTL: time.Minute})

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("api gets a session and the full canonical path", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cars?page=9", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, "/api/cars?page=1", w.Header().Get(urlstate.ReplaceURLHeader))
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, w.Body.String(), cookies[0].Value)
	})

	t.Run("health is outside the session", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Empty(t, w.Result().Cookies())
	})
}

func TestRouter_HealthCheckFailure(t *testing.T) {
	down := func(context.Context) error { return errors.New("database unreachable") }
	srv := NewAPIServer(echoAPI(), down, ServerConfig{})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "database unreachable")
}

func TestRouter_BodyLimit(t *testing.T) {
	srv := NewAPIServer(echoAPI(), nil, ServerConfig{MaxBodyBytes: 4})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/cars", strings.NewReader("too large")))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
