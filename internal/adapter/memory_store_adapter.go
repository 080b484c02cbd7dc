package adapter

import (
	"context"
	"sync"

	"study-analysis/internal/domain"
)

// MemoryStoreAdapter implements domain.KeyValueStore in process memory.
// Contents are lost on restart; it backs local runs and tests.
type MemoryStoreAdapter struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStoreAdapter() *MemoryStoreAdapter {
	return &MemoryStoreAdapter{data: make(map[string]string)}
}

func (m *MemoryStoreAdapter) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return val, nil
}

func (m *MemoryStoreAdapter) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStoreAdapter) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryStoreAdapter) Ping(ctx context.Context) error {
	return ctx.Err()
}
