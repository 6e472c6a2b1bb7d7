package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/api/orders", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/orders", func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r
}

func TestRateLimit_StrictTierOnOrderSubmission(t *testing.T) {
	router := newTestRouter()

	// Burst of 5, then the strict bucket runs dry.
	var last int
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest("POST", "/api/orders", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		last = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)

	// Browsing from the same IP uses a separate bucket.
	req := httptest.NewRequest("GET", "/api/orders", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_SeparateClients(t *testing.T) {
	router := newTestRouter()

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("POST", "/api/orders", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}

	// A different client is unaffected.
	req := httptest.NewRequest("POST", "/api/orders", nil)
	req.RemoteAddr = "10.0.0.3:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("AllowAllWhenUnconfigured", func(t *testing.T) {
		r := gin.New()
		r.Use(CORSMiddleware(nil))
		r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "http://example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("RestrictedOrigins", func(t *testing.T) {
		r := gin.New()
		r.Use(CORSMiddleware([]string{"http://localhost:3000"}))
		r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
