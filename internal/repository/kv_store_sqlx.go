package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"study-analysis/internal/domain"
	"study-analysis/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const (
	kvSelectQuery = `SELECT item_value FROM kv_store WHERE key_name = ?`
	kvUpdateQuery = `UPDATE kv_store SET item_value = :item_value, updated_at = :updated_at WHERE key_name = :key_name`
	kvInsertQuery = `INSERT INTO kv_store (key_name, item_value, created_at, updated_at) VALUES (:key_name, :item_value, :created_at, :updated_at)`
	kvDeleteQuery = `DELETE FROM kv_store WHERE key_name = ?`
)

// sqlxKeyValueStore implements domain.KeyValueStore on the KV_STORE table.
type sqlxKeyValueStore struct {
	db *sqlx.DB
	tx domain.TransactionManager
}

func NewSQLXKeyValueStore(db *sqlx.DB, tx domain.TransactionManager) domain.KeyValueStore {
	return &sqlxKeyValueStore{db: db, tx: tx}
}

func (s *sqlxKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	exec := GetExecutor(ctx, s.db)
	if err := exec.GetContext(ctx, &value, exec.Rebind(kvSelectQuery), key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

// Set updates the row for key and inserts it when no row was updated.
func (s *sqlxKeyValueStore) Set(ctx context.Context, key string, value string) error {
	now := time.Now().UTC()
	item := &models.KVItem{KeyName: key, ItemValue: value, CreatedAt: now, UpdatedAt: now}

	return s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := GetExecutor(txCtx, s.db)

		result, err := exec.NamedExecContext(txCtx, kvUpdateQuery, item)
		if err != nil {
			return fmt.Errorf("failed to update key %s: %w", key, err)
		}
		updated, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected for key %s: %w", key, err)
		}
		if updated > 0 {
			return nil
		}

		if _, err := exec.NamedExecContext(txCtx, kvInsertQuery, item); err != nil {
			return fmt.Errorf("failed to insert key %s: %w", key, err)
		}
		return nil
	})
}

func (s *sqlxKeyValueStore) Delete(ctx context.Context, key string) error {
	exec := GetExecutor(ctx, s.db)
	if _, err := exec.ExecContext(ctx, exec.Rebind(kvDeleteQuery), key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *sqlxKeyValueStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
