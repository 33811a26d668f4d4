// Package main is the entry point for the marketplace API server.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cosec/internal/config"
	"cosec/internal/logger"
	"cosec/internal/repositories"
	"cosec/internal/routes"
	"cosec/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const shutdownTimeout = 10 * time.Second

// main initializes and starts the HTTP server.
// It performs the following setup:
//   - Loads configuration
//   - Initializes database and cache connections
//   - Configures middleware and routes
//   - Serves until SIGINT or SIGTERM, then drains in-flight requests
func main() {
	config.LoadEnv()
	cfg := config.Load()

	log := logger.NewFromEnv()
	defer log.Sync()

	if err := repositories.InitDB(cfg); err != nil {
		log.Fatal("failed to initialise storage", "error", err)
	}
	defer func() {
		if err := repositories.Close(); err != nil {
			log.Error("failed to close connections", "error", err)
		}
	}()
	log.Info("connected to database and redis", "db_host", cfg.DB.Host, "redis_host", cfg.Redis.Host)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go logPoolStats(ctx, log)

	app := fiber.New(fiber.Config{
		AppName:      "cosec-api",
		BodyLimit:    int(cfg.MediaMaxBytes) + 1<<20,
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	if err := routes.SetupRoutes(app, cfg, log); err != nil {
		log.Fatal("failed to set up routes", "error", err)
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down", "timeout", shutdownTimeout)
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	}()

	log.Info("server listening", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
	}
}

// errorHandler renders unhandled errors in the API's JSON error shape.
func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		} else {
			log.Error("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
		}
		return response.Error(c, code, message)
	}
}

// logPoolStats reports connection pool usage once a minute.
func logPoolStats(ctx context.Context, log *logger.Logger) {
	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Warn("pool stats unavailable", "error", err)
		return
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			fields := []any{
				"open", stats.OpenConnections,
				"idle", stats.Idle,
				"in_use", stats.InUse,
				"wait_count", stats.WaitCount,
				"wait_duration", stats.WaitDuration,
			}
			if repositories.CacheService != nil {
				redisStats := repositories.CacheService.GetStats()
				fields = append(fields, "redis_hits", redisStats.Hits, "redis_misses", redisStats.Misses, "redis_total_conns", redisStats.TotalConns)
			}
			log.Debug("pool stats", fields...)
		}
	}
}
