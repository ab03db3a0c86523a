package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/vibe-fitness/backend/internal/logger"
)

func newTestLimiter(t *testing.T, limit int) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiter(client, RateLimitConfig{Window: time.Minute, Limit: limit}, logger.NewTestLogger(t))
	rl.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 30, 0, time.UTC) }
	return rl, mr
}

func limitedRouter(rl *RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	return router
}

func get(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	rl, _ := newTestLimiter(t, 2)
	router := limitedRouter(rl)

	first := get(router)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, get(router).Code)

	blocked := get(router)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "30", blocked.Header().Get("Retry-After"))
	assert.Contains(t, blocked.Body.String(), "Rate limit exceeded")
}

func TestRateLimiterKeysExpire(t *testing.T) {
	rl, mr := newTestLimiter(t, 1)

	allowed, remaining, reset, err := rl.IsAllowed(context.Background(), "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 1, 0, 0, time.UTC), reset.UTC())

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, time.Minute, mr.TTL(keys[0]))
}

func TestRateLimiterFailsOpen(t *testing.T) {
	rl, mr := newTestLimiter(t, 1)
	router := limitedRouter(rl)
	mr.Close()

	for i := 0; i < 3; i++ {
		w := get(router)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}
