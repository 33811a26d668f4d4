// Package routes defines the API routing configuration.
// It wires repositories, services and handlers, and mounts every route with
// its middleware and authentication requirements.
package routes

import (
	"context"
	"fmt"
	"time"

	"cosec/internal/config"
	"cosec/internal/handlers"
	"cosec/internal/logger"
	"cosec/internal/middleware"
	"cosec/internal/repositories"
	"cosec/internal/services/auth"
	"cosec/internal/services/feetier"
	"cosec/internal/services/media"
	"cosec/internal/services/specialist"
	"cosec/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	FeeTier    *handlers.FeeTierHandler
	Specialist *handlers.SpecialistHandler
	Media      *handlers.MediaHandler

	// AdminAuth guards /api/admin.
	AdminAuth fiber.Handler
	// LoginLimit throttles /api/auth/login. Optional.
	LoginLimit fiber.Handler
}

// SetupRoutes builds the service graph on the shared database and cache
// handles and registers all routes.
func SetupRoutes(app *fiber.App, cfg config.Config, log *logger.Logger) error {
	feeTierRepo := repositories.NewFeeTierRepository(repositories.DB)
	specialistRepo := repositories.NewSpecialistRepository(repositories.DB)

	var tierCache feetier.Cache
	if repositories.CacheService != nil {
		tierCache = repositories.CacheService
	}
	feeTierService := feetier.NewService(feeTierRepo, tierCache, log.WithFields("component", "feetier"))
	specialistService := specialist.NewService(specialistRepo, feeTierService, log.WithFields("component", "specialist"))

	authService, err := auth.NewService(auth.Config{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.JWTExpiry,
	}, log.WithFields("component", "auth"))
	if err != nil {
		return fmt.Errorf("init auth: %w", err)
	}

	storage, err := media.NewCloudinaryStorage(cfg.Cloudinary)
	if err != nil {
		return err
	}
	if storage == nil {
		log.Warn("cloudinary not configured, media uploads disabled")
	}
	mediaService := media.NewService(storage, cfg.Cloudinary.Folder, cfg.MediaMaxBytes, log.WithFields("component", "media"))

	checks := map[string]handlers.Check{
		"database": func(ctx context.Context) error { return repositories.Ping(ctx, repositories.DB) },
	}
	if repositories.CacheService != nil {
		checks["redis"] = repositories.CacheService.HealthCheck
	}

	Register(app, Handlers{
		Health:     handlers.NewHealthHandler(checks),
		Auth:       handlers.NewAuthHandler(authService, log),
		FeeTier:    handlers.NewFeeTierHandler(feeTierService, log),
		Specialist: handlers.NewSpecialistHandler(specialistService, log),
		Media:      handlers.NewMediaHandler(mediaService, cfg.MediaMaxBytes, log),
		AdminAuth:  middleware.NewAuthMiddleware(authService, log).Handler,
		LoginLimit: LoginLimiter(cfg.LoginRateLimit),
	})
	return nil
}

// Register mounts the route table.
func Register(app *fiber.App, h Handlers) {
	app.Get("/health", h.Health.HealthCheck)

	api := app.Group("/api")

	login := []fiber.Handler{h.Auth.Login}
	if h.LoginLimit != nil {
		login = append([]fiber.Handler{h.LoginLimit}, login...)
	}
	api.Post("/auth/login", login...)

	// Public catalogue
	api.Get("/pricing/quote", h.Specialist.Quote)
	api.Get("/fee-tiers", h.FeeTier.List)
	api.Get("/fee-tiers/:id", h.FeeTier.Get)
	api.Get("/specialists", h.Specialist.List)
	api.Get("/specialists/:id", h.Specialist.Get)

	admin := api.Group("/admin", h.AdminAuth)

	specialists := admin.Group("/specialists")
	specialists.Get("/", h.Specialist.AdminList)
	specialists.Post("/", h.Specialist.Create)
	specialists.Put("/:id", h.Specialist.Update)
	specialists.Delete("/:id", h.Specialist.Delete)

	tiers := admin.Group("/fee-tiers")
	tiers.Get("/audit", h.FeeTier.Audit)
	tiers.Post("/", h.FeeTier.Create)
	tiers.Put("/:id", h.FeeTier.Update)
	tiers.Delete("/:id", h.FeeTier.Delete)

	mediaGroup := admin.Group("/media")
	mediaGroup.Post("/", h.Media.Upload)
	mediaGroup.Delete("/*", h.Media.Delete)
}

// LoginLimiter allows attempts per IP per minute. Zero disables it.
func LoginLimiter(attempts int) fiber.Handler {
	if attempts <= 0 {
		return nil
	}
	return limiter.New(limiter.Config{
		Max:        attempts,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return response.Error(c, fiber.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	})
}
