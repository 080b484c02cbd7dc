package repository

import (
	"context"
	"fmt"

	"study-analysis/internal/adapter"
	"study-analysis/internal/cache"
	"study-analysis/internal/config"
	"study-analysis/internal/database"
	"study-analysis/internal/domain"
	"study-analysis/internal/logger"

	"go.uber.org/zap"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreOracle = "oracle"
)

// OpenKeyValueStore connects the backend named by cfg.Store.Driver. The
// returned close function releases the backend's connections.
func OpenKeyValueStore(ctx context.Context, cfg *config.Config) (domain.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Driver {
	case "", StoreMemory:
		logger.Get().Info("Using in-memory analysis store")
		return adapter.NewMemoryStoreAdapter(), noop, nil

	case StoreRedis:
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		logger.Get().Info("Using Redis analysis store", zap.String("address", cfg.Redis.Address))
		return adapter.NewRedisStoreAdapter(client), client.Close, nil

	case StoreOracle:
		db, err := database.NewSQLXOracleDB(ctx, cfg.DB.Driver, cfg.GetDSN())
		if err != nil {
			return nil, noop, err
		}
		logger.Get().Info("Using Oracle analysis store", zap.String("driver", cfg.DB.Driver))
		return NewSQLXKeyValueStore(db, NewTransactionManagerAdapter(db)), db.Close, nil

	default:
		return nil, noop, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}
