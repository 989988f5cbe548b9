package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(handlers...)
	router.POST("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})
	return router
}

func TestCORS(t *testing.T) {
	router := newTestRouter(CORS())

	t.Run("Preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected wildcard origin on preflight")
		}
		if w.Header().Get("Access-Control-Allow-Methods") != "POST, OPTIONS" {
			t.Errorf("Expected allowed methods on preflight, got %q", w.Header().Get("Access-Control-Allow-Methods"))
		}
	})

	t.Run("Post", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected wildcard origin")
		}
		if w.Header().Get("Access-Control-Allow-Headers") != "" {
			t.Error("Allow-Headers should be left to the handler")
		}
	})
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(RequestID())

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", nil))

		id := w.Header().Get("X-Request-ID")
		if len(id) != 36 {
			t.Errorf("Expected generated UUID, got %q", id)
		}
		if w.Body.String() != id {
			t.Errorf("Expected context request id %q, got %q", id, w.Body.String())
		}
	})

	t.Run("Propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		router.ServeHTTP(w, req)

		if w.Header().Get("X-Request-ID") != "abc-123" {
			t.Errorf("Expected propagated id, got %q", w.Header().Get("X-Request-ID"))
		}
	})
}

func TestRateLimiter(t *testing.T) {
	router := newTestRouter(RateLimiter(0.001, 1))

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/echo", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("Expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/echo", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429, got %d", second.Code)
	}
	if !strings.Contains(second.Body.String(), `"success":false`) {
		t.Errorf("Expected error body, got %s", second.Body.String())
	}
}

func TestRequestSizeLimit(t *testing.T) {
	router := newTestRouter(RequestSizeLimit(8))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"object_key":"too-long.jpg"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413, got %d", w.Code)
	}
}
