package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/pageza/vibe-fitness/backend/config"
	"github.com/pageza/vibe-fitness/backend/internal/api"
	"github.com/pageza/vibe-fitness/backend/internal/catalog"
	"github.com/pageza/vibe-fitness/backend/internal/database"
	"github.com/pageza/vibe-fitness/backend/internal/logger"
	"github.com/pageza/vibe-fitness/backend/internal/middleware"
	"github.com/pageza/vibe-fitness/backend/internal/router"
	"github.com/pageza/vibe-fitness/backend/internal/server"
	"github.com/pageza/vibe-fitness/backend/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.Environment.GinMode())

	appLogger, err := logger.NewStructured(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := catalog.New()
	handler := api.NewHandler(api.Services{
		Diet:      service.NewDietService(store, nil),
		Workout:   service.NewWorkoutService(store, nil),
		Advisory:  service.NewAdvisoryService(),
		Nutrition: service.NewNutritionService(),
	}, cfg.PlanDays, appLogger, nil)

	opts := router.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
		Logger:         appLogger,
	}
	if cfg.RateLimitEnabled {
		client, err := database.NewRedisClient(ctx, cfg)
		if err != nil {
			return err
		}
		defer client.Close()
		opts.RateLimiter = middleware.NewRateLimiter(client, middleware.RateLimitConfig{
			Window: cfg.RateLimitWindow,
			Limit:  cfg.RateLimitRequests,
		}, appLogger)
		appLogger.Info("rate limiting enabled", map[string]interface{}{
			"requests": cfg.RateLimitRequests,
			"window":   cfg.RateLimitWindow.String(),
		})
	}

	srv := server.New(cfg.Addr(), router.SetupRouter(handler, opts), cfg.ShutdownTimeout, appLogger)
	appLogger.Info("starting server", map[string]interface{}{
		"addr":        cfg.Addr(),
		"environment": string(cfg.Environment),
	})
	return srv.Run(ctx)
}
