package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartwarehouse/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limitedEngine(limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RateLimiter(limit, window))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func hit(r *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	r := limitedEngine(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(r, "10.1.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.1.0.1"))
}

func TestRateLimiter_TracksIPsIndependently(t *testing.T) {
	r := limitedEngine(1, time.Minute)

	assert.Equal(t, http.StatusOK, hit(r, "10.2.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.2.0.1"))
	assert.Equal(t, http.StatusOK, hit(r, "10.2.0.2"))
}

func TestRateLimiter_WindowResets(t *testing.T) {
	r := limitedEngine(1, 30*time.Millisecond)

	assert.Equal(t, http.StatusOK, hit(r, "10.3.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.3.0.1"))

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hit(r, "10.3.0.1"))
}
