package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"study-analysis/internal/cache"
	"study-analysis/internal/domain"

	"golang.org/x/sync/errgroup"
)

// analysisRepository keeps analyses as JSON arrays in a key-value store:
// one list across all users and one list per user.
type analysisRepository struct {
	store domain.KeyValueStore
	// mu serialises read-modify-write cycles within this process only.
	mu sync.Mutex
}

func NewAnalysisRepository(store domain.KeyValueStore) domain.AnalysisRepository {
	return &analysisRepository{store: store}
}

func (r *analysisRepository) Save(ctx context.Context, analysis *domain.StudyAnalysis) error {
	if analysis == nil {
		return errors.New("analysis is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.update(gctx, cache.GlobalAnalysesKey(), func(list []*domain.StudyAnalysis) []*domain.StudyAnalysis {
			return append(list, analysis)
		})
	})
	if analysis.UserID != "" {
		g.Go(func() error {
			return r.update(gctx, cache.UserAnalysesKey(analysis.UserID), func(list []*domain.StudyAnalysis) []*domain.StudyAnalysis {
				return append(list, analysis)
			})
		})
	}
	return g.Wait()
}

func (r *analysisRepository) ListAll(ctx context.Context) ([]*domain.StudyAnalysis, error) {
	return r.load(ctx, cache.GlobalAnalysesKey())
}

func (r *analysisRepository) ListByUser(ctx context.Context, userID string) ([]*domain.StudyAnalysis, error) {
	return r.load(ctx, cache.UserAnalysesKey(userID))
}

// GetByID searches the global list.
func (r *analysisRepository) GetByID(ctx context.Context, analysisID string) (*domain.StudyAnalysis, error) {
	list, err := r.load(ctx, cache.GlobalAnalysesKey())
	if err != nil {
		return nil, err
	}
	for _, a := range list {
		if a.ID == analysisID {
			return a, nil
		}
	}
	return nil, domain.NewAnalysisNotFoundError(analysisID)
}

// Delete removes the analysis from the global list and, when userID is
// set, from that user's list. Unknown ids are ignored.
func (r *analysisRepository) Delete(ctx context.Context, analysisID string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	without := func(list []*domain.StudyAnalysis) []*domain.StudyAnalysis {
		kept := list[:0]
		for _, a := range list {
			if a.ID != analysisID {
				kept = append(kept, a)
			}
		}
		return kept
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.update(gctx, cache.GlobalAnalysesKey(), without)
	})
	if userID != "" {
		g.Go(func() error {
			return r.update(gctx, cache.UserAnalysesKey(userID), without)
		})
	}
	return g.Wait()
}

func (r *analysisRepository) update(ctx context.Context, key string, fn func([]*domain.StudyAnalysis) []*domain.StudyAnalysis) error {
	list, err := r.load(ctx, key)
	if err != nil {
		return err
	}
	data, err := json.Marshal(fn(list))
	if err != nil {
		return fmt.Errorf("failed to marshal analyses for %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write analyses to %s: %w", key, err)
	}
	return nil
}

func (r *analysisRepository) load(ctx context.Context, key string) ([]*domain.StudyAnalysis, error) {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return []*domain.StudyAnalysis{}, nil
		}
		return nil, fmt.Errorf("failed to read analyses from %s: %w", key, err)
	}

	list := []*domain.StudyAnalysis{}
	if raw == "" {
		return list, nil
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analyses from %s: %w", key, err)
	}
	if list == nil {
		list = []*domain.StudyAnalysis{}
	}
	return list, nil
}
