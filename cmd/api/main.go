// @title Study Analysis API
// @version 1.0
// @description Scores study-habit questionnaires and generates dated exam study plans.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "study-analysis/cmd/api/docs"
	"study-analysis/internal/config"
	"study-analysis/internal/logger"
	"study-analysis/internal/metrics"
	"study-analysis/internal/planner"
	"study-analysis/internal/repository"
	"study-analysis/internal/service"
	"study-analysis/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Analysis store
	store, closeStore, err := repository.OpenKeyValueStore(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to open analysis store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer func() {
		if err := closeStore(); err != nil {
			appLogger.Warn("Failed to close analysis store", zap.Error(err))
		}
	}()
	analysisRepository := repository.NewAnalysisRepository(store)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Initialize services
	settings := planner.SettingsFromConfig(cfg.Planner)
	if err := planner.ValidateDefaultTarget(settings, time.Now().UTC()); err != nil {
		appLogger.Warn("Default planner.target_date is not in the future; requests without target_date will be rejected",
			zap.String("target_date", settings.TargetDate),
			zap.Error(err),
		)
	}
	engine := planner.NewEngine(settings, planner.WithLogger(appLogger.Named("planner")))
	validator := validation.NewValidator(planner.Questionnaire(), cfg.Planner.StrictOptions)
	analysisService := service.NewAnalysisService(engine, analysisRepository, validator, appMetrics)

	tokenService, err := service.NewTokenService(cfg.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create TokenService", zap.Error(err))
	}
	appLogger.Info("Services initialized", zap.String("store", cfg.Store.Driver), zap.String("target_date", cfg.Planner.TargetDate))

	app := newApp(ctx, appDeps{
		cfg:             cfg,
		analysisService: analysisService,
		tokenService:    tokenService,
		store:           store,
		metrics:         appMetrics,
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
