// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	analyticsRouter "github.com/RootViper4/admin-portabitity/internal/analytics/router"
	analyticsService "github.com/RootViper4/admin-portabitity/internal/analytics/service"
	authRepository "github.com/RootViper4/admin-portabitity/internal/auth/repository"
	authRouter "github.com/RootViper4/admin-portabitity/internal/auth/router"
	authService "github.com/RootViper4/admin-portabitity/internal/auth/service"
	"github.com/RootViper4/admin-portabitity/internal/auth/session"
	"github.com/RootViper4/admin-portabitity/internal/auth/token"
	"github.com/RootViper4/admin-portabitity/internal/config"
	dashboardRouter "github.com/RootViper4/admin-portabitity/internal/dashboard/router"
	dashboardService "github.com/RootViper4/admin-portabitity/internal/dashboard/service"
	"github.com/RootViper4/admin-portabitity/internal/database"
	"github.com/RootViper4/admin-portabitity/internal/feed"
	"github.com/RootViper4/admin-portabitity/internal/health"
	"github.com/RootViper4/admin-portabitity/internal/middleware"
	requestRepository "github.com/RootViper4/admin-portabitity/internal/request/repository"
	requestRouter "github.com/RootViper4/admin-portabitity/internal/request/router"
	requestService "github.com/RootViper4/admin-portabitity/internal/request/service"
	"github.com/RootViper4/admin-portabitity/pkg/logger"
	"github.com/RootViper4/admin-portabitity/pkg/retry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	gin.SetMode(cfg.GinMode)

	db, err := database.New()
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			appLogger.Errorw("failed to close database", "error", closeErr)
		}
	}()

	if err := database.Migrate(db); err != nil {
		appLogger.Fatalw("failed to apply migrations", "error", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	redisRetry := retry.RedisConfig()
	redisRetry.OnRetry = func(attempt int, err error, delay time.Duration) {
		appLogger.Warnw("redis connection attempt failed, retrying",
			"attempt", attempt, "delay", delay, "error", err)
	}
	if err := retry.Do(ctx, redisRetry, func() error {
		return redisClient.Ping(ctx).Err()
	}); err != nil {
		appLogger.Fatalw("failed to connect to redis", "error", err)
	}
	defer func() { _ = redisClient.Close() }()

	tokens, err := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer)
	if err != nil {
		appLogger.Fatalw("failed to create token manager", "error", err)
	}
	sessions := session.NewRedisStore(redisClient, cfg.Redis.KeyPrefix, cfg.Redis.SessionTTL)

	reqRepo := requestRepository.New(db)
	authRepo := authRepository.New(db)

	hub := feed.NewHub(reqRepo, appLogger, cfg.App.FeedRefresh)
	go hub.Run(ctx)

	reqService := requestService.New(reqRepo, appLogger, cfg.App.AppID, hub)
	authSvc := authService.New(authRepo, sessions, tokens, appLogger)
	dashSvc := dashboardService.New(reqRepo, appLogger)
	analyticsSvc := analyticsService.New(reqRepo, appLogger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics, err := middleware.NewMetrics(registry)
	if err != nil {
		appLogger.Fatalw("failed to register metrics", "error", err)
	}

	r := gin.New()
	r.Use(middleware.Recovery(appLogger))
	r.Use(middleware.Logger(appLogger))
	r.Use(metrics.Handler())
	r.Use(middleware.Auth(authSvc, appLogger))

	health.RegisterRoutes(r, health.New(db, redisClient, appLogger))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	authRouter.RegisterRoutes(r, authSvc, appLogger)
	requestRouter.RegisterRoutes(r, reqService, appLogger)
	dashboardRouter.RegisterRoutes(r, dashSvc, appLogger)
	analyticsRouter.RegisterRoutes(r, analyticsSvc, appLogger)
	feed.RegisterRoutes(r, feed.NewHandler(hub, appLogger))

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Infow("starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	appLogger.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorw("graceful shutdown failed", "error", err)
	}
}
