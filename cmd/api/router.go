package main

import (
	"context"
	"time"

	"study-analysis/internal/config"
	"study-analysis/internal/handler"
	"study-analysis/internal/metrics"
	"study-analysis/internal/middleware"
	"study-analysis/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

type appDeps struct {
	cfg             *config.Config
	analysisService service.AnalysisService
	tokenService    service.TokenService
	store           handler.Pinger
	metrics         *metrics.Metrics
}

// newApp builds the fiber app with all routes. ctx bounds the rate limiter's
// background cleanup.
func newApp(ctx context.Context, deps appDeps) *fiber.App {
	cfg := deps.cfg

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(deps.metrics.Middleware())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", deps.metrics.Handler())

	analysisHandler := handler.NewAnalysisHandler(deps.analysisService)
	healthHandler := handler.NewHealthHandler(deps.store)

	apiGroup := app.Group("/api")
	apiGroup.Get("/health", healthHandler.Health)
	apiGroup.Get("/questionnaire", analysisHandler.GetQuestionnaire)

	protected := middleware.Protected(deps.tokenService)
	analysisGroup := apiGroup.Group("/analyses", protected)
	analysisGroup.Post("/", middleware.RateLimiter(ctx, cfg.RateLimit.Requests, cfg.RateLimit.Window), analysisHandler.CreateAnalysis)
	analysisGroup.Get("/", middleware.RequireAdmin(), analysisHandler.ListAnalyses)
	analysisGroup.Get("/:id", analysisHandler.GetAnalysis)
	analysisGroup.Delete("/:id", analysisHandler.DeleteAnalysis)

	userGroup := apiGroup.Group("/users", protected)
	userGroup.Get("/me/analyses", analysisHandler.ListMyAnalyses)

	return app
}
