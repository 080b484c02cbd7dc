package service

import (
	"context"

	"study-analysis/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockAnalysisRepository ---
type MockAnalysisRepository struct {
	mock.Mock
}

func (m *MockAnalysisRepository) Save(ctx context.Context, analysis *domain.StudyAnalysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}

func (m *MockAnalysisRepository) ListAll(ctx context.Context) ([]*domain.StudyAnalysis, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StudyAnalysis), args.Error(1)
}

func (m *MockAnalysisRepository) ListByUser(ctx context.Context, userID string) ([]*domain.StudyAnalysis, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StudyAnalysis), args.Error(1)
}

func (m *MockAnalysisRepository) GetByID(ctx context.Context, analysisID string) (*domain.StudyAnalysis, error) {
	args := m.Called(ctx, analysisID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudyAnalysis), args.Error(1)
}

func (m *MockAnalysisRepository) Delete(ctx context.Context, analysisID string, userID string) error {
	args := m.Called(ctx, analysisID, userID)
	return args.Error(0)
}
