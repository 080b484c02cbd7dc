// Command analyze runs the study-plan engine on an answer file without the
// HTTP server.
//
//	analyze -answers answers.json [-target 2027-11-18] [-user u1] [-persist]
//	analyze -token -user u1 [-admin]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"study-analysis/internal/adapter"
	"study-analysis/internal/config"
	"study-analysis/internal/domain"
	"study-analysis/internal/dto"
	"study-analysis/internal/logger"
	"study-analysis/internal/planner"
	"study-analysis/internal/repository"
	"study-analysis/internal/service"
	"study-analysis/internal/validation"

	"go.uber.org/zap"
)

func main() {
	answersPath := flag.String("answers", "", "JSON file with {\"answers\": {...}, \"target_date\": \"YYYY-MM-DD\"} or a bare answers object")
	target := flag.String("target", "", "exam date (YYYY-MM-DD), overrides the file and the configured default")
	userID := flag.String("user", "cli", "user id the analysis is recorded for")
	persist := flag.Bool("persist", false, "save the analysis to the configured store")
	out := flag.String("out", "", "write the analysis to this file instead of stdout")
	mintToken := flag.Bool("token", false, "print an access token for -user and exit")
	admin := flag.Bool("admin", false, "with -token, grant the admin role")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *mintToken {
		tokenService, err := service.NewTokenService(cfg.JWT)
		if err != nil {
			appLogger.Fatal("Failed to create TokenService", zap.Error(err))
		}
		createToken := tokenService.CreateAccessToken
		if *admin {
			createToken = tokenService.CreateAdminToken
		}
		token, err := createToken(ctx, *userID)
		if err != nil {
			appLogger.Fatal("Failed to create access token", zap.Error(err))
		}
		fmt.Println(token)
		return
	}

	if *answersPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	req, err := readRequest(*answersPath)
	if err != nil {
		appLogger.Fatal("Failed to read answers", zap.String("path", *answersPath), zap.Error(err))
	}
	if *target != "" {
		req.TargetDate = *target
	}

	var store domain.KeyValueStore = adapter.NewMemoryStoreAdapter()
	if *persist {
		kv, closeStore, err := repository.OpenKeyValueStore(ctx, cfg)
		if err != nil {
			appLogger.Fatal("Failed to open analysis store", zap.Error(err))
		}
		defer closeStore()
		store = kv
	}

	engine := planner.NewEngine(planner.SettingsFromConfig(cfg.Planner), planner.WithLogger(appLogger.Named("planner")))
	validator := validation.NewValidator(planner.Questionnaire(), cfg.Planner.StrictOptions)
	analysisService := service.NewAnalysisService(engine, repository.NewAnalysisRepository(store), validator, nil)

	analysis, err := analysisService.Analyze(ctx, *userID, req)
	if err != nil {
		appLogger.Fatal("Analysis failed", zap.Error(err))
	}

	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		appLogger.Fatal("Failed to encode analysis", zap.Error(err))
	}
	data = append(data, '\n')

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		appLogger.Fatal("Failed to write analysis", zap.String("path", *out), zap.Error(err))
	}
	appLogger.Info("Analysis written", zap.String("path", *out), zap.String("analysisID", analysis.ID))
}

// readRequest accepts either an AnalyzeRequest document or a bare answers map.
func readRequest(path string) (dto.AnalyzeRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return dto.AnalyzeRequest{}, err
	}

	var req dto.AnalyzeRequest
	if err := json.Unmarshal(raw, &req); err == nil && req.Answers != nil {
		return req, nil
	}

	var answers map[string]string
	if err := json.Unmarshal(raw, &answers); err != nil {
		return dto.AnalyzeRequest{}, fmt.Errorf("answers file must hold an answers object: %w", err)
	}
	return dto.AnalyzeRequest{Answers: answers}, nil
}
