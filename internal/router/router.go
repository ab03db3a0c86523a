package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pageza/vibe-fitness/backend/internal/api"
	"github.com/pageza/vibe-fitness/backend/internal/logger"
	"github.com/pageza/vibe-fitness/backend/internal/middleware"
)

// Options configures the router.
type Options struct {
	AllowedOrigins []string
	// TrustedProxies are the proxies allowed to set X-Forwarded-For. Empty
	// means the client IP is always the peer address.
	TrustedProxies []string
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
	Logger      logger.Logger
}

// SetupRouter configures the application routes
func SetupRouter(handler *api.Handler, opts Options) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		opts.Logger.Warn("invalid trusted proxies, trusting none", map[string]interface{}{
			"proxies": opts.TrustedProxies,
			"error":   err.Error(),
		})
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(opts.Logger),
		middleware.ErrorHandler(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	if opts.RateLimiter != nil {
		apiGroup.Use(opts.RateLimiter.Middleware())
	}
	handler.RegisterRoutes(apiGroup)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	return router
}
