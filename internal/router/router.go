package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vitalyze/vitalyze/internal/config"
	"github.com/vitalyze/vitalyze/internal/handlers"
	"github.com/vitalyze/vitalyze/internal/logging"
	"github.com/vitalyze/vitalyze/internal/middleware"
)

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, cfg config.Config) *handlers.Handler {
	// Create handler instance
	h := handlers.New(logger, cfg.Engine.Policy())

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-API-Key,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger))

	// Health check (no auth required)
	app.Get("/health", h.Health)

	// API key authentication middleware
	authMiddleware := middleware.APIKeyAuth(logger, cfg.Auth.APIKeys, cfg.Auth.Enabled)

	// API v1 routes (protected by API key)
	v1 := app.Group("/v1", authMiddleware)

	// Trend Routes
	v1.Post("/trends/analyze", h.AnalyzeTrends)
	v1.Post("/trends/strength", h.TrendStrength)

	// Anomaly Routes
	v1.Post("/anomalies/detect", h.DetectAnomalies)
	v1.Post("/outliers", h.DetectOutliers)

	// Forecast Routes
	v1.Post("/forecast/trend", h.ForecastTrend)
	v1.Post("/forecast/value", h.ForecastValue)

	// Quality Routes
	v1.Post("/quality/assess", h.AssessQuality)
	v1.Post("/quality/variability", h.Variability)
	v1.Post("/quality/gaps", h.DataGaps)

	// 404 handler
	app.Use(h.NotFound)

	return h
}

// New creates a new Fiber app with configuration
func New(logger *logging.Logger, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Vitalyze Analyzer",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	Setup(app, logger, cfg)

	return app
}
