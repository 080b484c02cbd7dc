package adapter

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"study-analysis/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAdapter(t *testing.T) {
	store := NewMemoryStoreAdapter()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "k", "v1"))
	require.NoError(t, store.Set(ctx, "k", "v2"))
	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", val)

	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	assert.NoError(t, store.Ping(ctx))
}

func TestMemoryStoreAdapter_CancelledContext(t *testing.T) {
	store := NewMemoryStoreAdapter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Set(ctx, "k", "v"), context.Canceled)
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Ping(ctx), context.Canceled)
}

func TestMemoryStoreAdapter_Concurrent(t *testing.T) {
	store := NewMemoryStoreAdapter()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			assert.NoError(t, store.Set(ctx, key, "v"))
			_, err := store.Get(ctx, key)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
}
