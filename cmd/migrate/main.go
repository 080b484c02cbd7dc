package main

import (
	"context"
	"flag"
	"log"
	"time"

	"study-analysis/internal/config"
	"study-analysis/internal/database"
	"study-analysis/internal/logger"

	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "database/migrations", "directory holding the *.up.sql / *.down.sql files")
	down := flag.Bool("down", false, "roll back instead of applying")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := database.NewSQLXOracleDB(ctx, cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if *down {
		if err := database.RollbackMigrations(ctx, db, *dir); err != nil {
			l.Fatal("Failed to roll back migrations", zap.Error(err))
		}
		return
	}
	if err := database.RunMigrations(ctx, db, *dir); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
}
