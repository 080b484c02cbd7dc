package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"study-analysis/internal/adapter"
	"study-analysis/internal/cache"
	"study-analysis/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockKeyValueStore struct {
	mock.Mock
}

func (m *MockKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockKeyValueStore) Set(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKeyValueStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockKeyValueStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newAnalysis(id, userID string) *domain.StudyAnalysis {
	return &domain.StudyAnalysis{
		ID:     id,
		UserID: userID,
		Date:   time.Date(2024, 6, 21, 10, 0, 0, 0, time.UTC),
		Efficiency: domain.EfficiencyProfile{
			Overall: 0.88, Focus: 0.875, Consistency: 0.825, Retention: 0.8,
		},
		Strengths: []string{"높은 학습 효율성"},
		StudyPlan: domain.StudyPlan{ID: "plan-" + id, UserID: userID, Daily: []string{"9:00-11:00 집중 학습 (2시간)"}},
	}
}

func ids(list []*domain.StudyAnalysis) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}

func TestAnalysisRepository_SaveAndList(t *testing.T) {
	repo := NewAnalysisRepository(adapter.NewMemoryStoreAdapter())
	ctx := context.Background()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	require.NoError(t, repo.Save(ctx, newAnalysis("a1", "u1")))
	require.NoError(t, repo.Save(ctx, newAnalysis("a2", "u2")))
	require.NoError(t, repo.Save(ctx, newAnalysis("a3", "u1")))
	require.NoError(t, repo.Save(ctx, newAnalysis("a4", "")))

	all, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3", "a4"}, ids(all))

	mine, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a3"}, ids(mine))
	assert.Equal(t, "plan-a1", mine[0].StudyPlan.ID)
	assert.Equal(t, 0.875, mine[0].Efficiency.Focus)

	none, err := repo.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAnalysisRepository_GetByID(t *testing.T) {
	repo := NewAnalysisRepository(adapter.NewMemoryStoreAdapter())
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, newAnalysis("a1", "u1")))

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.True(t, got.Date.Equal(time.Date(2024, 6, 21, 10, 0, 0, 0, time.UTC)))

	_, err = repo.GetByID(ctx, "missing")
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeAnalysisNotFound, domainErr.Code)
}

func TestAnalysisRepository_Delete(t *testing.T) {
	repo := NewAnalysisRepository(adapter.NewMemoryStoreAdapter())
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, newAnalysis("a1", "u1")))
	require.NoError(t, repo.Save(ctx, newAnalysis("a2", "u1")))

	require.NoError(t, repo.Delete(ctx, "a1", "u1"))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, ids(all))
	mine, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, ids(mine))

	t.Run("unknown id is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "missing", "u1"))
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("without user only touches the global list", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "a2", ""))
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
		mine, err := repo.ListByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"a2"}, ids(mine))
	})
}

func TestAnalysisRepository_ConcurrentSaves(t *testing.T) {
	repo := NewAnalysisRepository(adapter.NewMemoryStoreAdapter())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Save(ctx, newAnalysis(fmt.Sprintf("a%d", i), "u1")))
		}(i)
	}
	wg.Wait()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 20)
	mine, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 20)
}

func TestAnalysisRepository_StoreErrors(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	t.Run("read failure", func(t *testing.T) {
		store := new(MockKeyValueStore)
		store.On("Get", mock.Anything, cache.GlobalAnalysesKey()).Return("", storeErr)

		_, err := NewAnalysisRepository(store).ListAll(ctx)
		assert.ErrorIs(t, err, storeErr)
		store.AssertExpectations(t)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		store := new(MockKeyValueStore)
		store.On("Get", mock.Anything, cache.UserAnalysesKey("u1")).Return("{not json", nil)

		_, err := NewAnalysisRepository(store).ListByUser(ctx, "u1")
		assert.ErrorContains(t, err, "failed to unmarshal")
		store.AssertExpectations(t)
	})

	t.Run("null payload", func(t *testing.T) {
		store := new(MockKeyValueStore)
		store.On("Get", mock.Anything, cache.GlobalAnalysesKey()).Return("null", nil)

		list, err := NewAnalysisRepository(store).ListAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		store.AssertExpectations(t)
	})

	t.Run("write failure", func(t *testing.T) {
		store := new(MockKeyValueStore)
		store.On("Get", mock.Anything, cache.GlobalAnalysesKey()).Return("", domain.ErrKeyNotFound)
		store.On("Set", mock.Anything, cache.GlobalAnalysesKey(), mock.AnythingOfType("string")).Return(storeErr)

		err := NewAnalysisRepository(store).Save(ctx, newAnalysis("a1", ""))
		assert.ErrorIs(t, err, storeErr)
		store.AssertExpectations(t)
	})

	t.Run("nil analysis", func(t *testing.T) {
		store := new(MockKeyValueStore)
		assert.Error(t, NewAnalysisRepository(store).Save(ctx, nil))
		store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})
}
