package domain

import "context"

// StoreError represents an error originating from the key-value store.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// ErrKeyNotFound is returned when a key is not present in the store.
const ErrKeyNotFound = StoreError("store: key not found")

// KeyValueStore is the persistence port analyses are written through.
// Adapters exist for Redis, Oracle and process memory.
type KeyValueStore interface {
	// Get returns ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites any existing value.
	Set(ctx context.Context, key string, value string) error

	// Delete must not fail when the key is absent.
	Delete(ctx context.Context, key string) error

	Ping(ctx context.Context) error
}

// AnalysisRepository persists analyses under a global collection and a
// per-user collection.
type AnalysisRepository interface {
	Save(ctx context.Context, analysis *StudyAnalysis) error
	ListAll(ctx context.Context) ([]*StudyAnalysis, error)
	ListByUser(ctx context.Context, userID string) ([]*StudyAnalysis, error)
	GetByID(ctx context.Context, analysisID string) (*StudyAnalysis, error)
	Delete(ctx context.Context, analysisID string, userID string) error
}

// TransactionManager runs fn inside a single database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
