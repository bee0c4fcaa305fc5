package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"fastbound-gateway/internal/middleware"
	"fastbound-gateway/pkg/log"
)

func newEngine(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	r.Use(mw.APIKeyAuth())
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestAPIKeyAuth(t *testing.T) {
	logger := log.Init(log.ZapConfig{Level: "error"})

	t.Run("No Key Configured Allows All", func(t *testing.T) {
		r := newEngine(middleware.New(logger, "", 60))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Wrong Key Rejected", func(t *testing.T) {
		r := newEngine(middleware.New(logger, "secret", 60))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderAPIKey, "not-secret")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Correct Key Accepted", func(t *testing.T) {
		r := newEngine(middleware.New(logger, "secret", 60))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderAPIKey, "secret")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	logger := log.Init(log.ZapConfig{Level: "error"})
	r := newEngine(middleware.New(logger, "", 60))

	t.Run("Generated When Missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Header().Get(middleware.HeaderRequestID) == "" {
			t.Errorf("expected a generated request id")
		}
	})

	t.Run("Caller ID Preserved", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "rid-42")
		r.ServeHTTP(w, req)
		if got := w.Header().Get(middleware.HeaderRequestID); got != "rid-42" {
			t.Errorf("expected rid-42, got %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	logger := log.Init(log.ZapConfig{Level: "error"})
	// Burst of 2 per minute: the third request in quick succession must be
	// rejected.
	r := newEngine(middleware.New(logger, "", 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "203.0.113.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("first two requests should pass: %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request should be limited: %v", codes)
	}
}
