package service

import (
	"context"
	"errors"
	"strings"

	"study-analysis/internal/domain"
	"study-analysis/internal/dto"
	"study-analysis/internal/logger"
	"study-analysis/internal/metrics"
	"study-analysis/internal/planner"
	"study-analysis/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// AnalysisService defines the operations behind the analysis API.
type AnalysisService interface {
	Analyze(ctx context.Context, userID string, req dto.AnalyzeRequest) (*domain.StudyAnalysis, error)
	GetAnalysis(ctx context.Context, userID, analysisID string) (*domain.StudyAnalysis, error)
	ListMyAnalyses(ctx context.Context, userID string) ([]*domain.StudyAnalysis, error)
	ListAllAnalyses(ctx context.Context) ([]*domain.StudyAnalysis, error)
	DeleteAnalysis(ctx context.Context, userID, analysisID string) error
	Questionnaire() []planner.Question
}

type analysisServiceImpl struct {
	engine    *planner.Engine
	repo      domain.AnalysisRepository
	validator *validation.Validator
	metrics   *metrics.Metrics
	sfGroup   singleflight.Group
}

// NewAnalysisService creates a new instance of AnalysisService. m may be nil.
func NewAnalysisService(engine *planner.Engine, repo domain.AnalysisRepository, validator *validation.Validator, m *metrics.Metrics) AnalysisService {
	return &analysisServiceImpl{
		engine:    engine,
		repo:      repo,
		validator: validator,
		metrics:   m,
	}
}

func (s *analysisServiceImpl) Analyze(ctx context.Context, userID string, req dto.AnalyzeRequest) (*domain.StudyAnalysis, error) {
	appLogger := logger.Get()

	if userID == "" {
		return nil, domain.NewUnauthorizedError("user is not authenticated")
	}

	if errs := s.validator.ValidateAnalyzeRequest(req); len(errs) > 0 {
		s.metrics.ObserveAnalysisError(domain.CodeValidation)
		return nil, errs
	}

	analysis, err := s.engine.Analyze(userID, domain.AnswerSet(req.Answers), strings.TrimSpace(req.TargetDate))
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			s.metrics.ObserveAnalysisError(domainErr.Code)
			appLogger.Info("Analysis rejected",
				zap.String("userID", userID),
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
			)
			return nil, err
		}
		s.metrics.ObserveAnalysisError(domain.CodeInternal)
		appLogger.Error("Failed to generate analysis", zap.String("userID", userID), zap.Error(err))
		return nil, domain.NewInternalError("failed to generate analysis", err)
	}

	if err := s.repo.Save(ctx, analysis); err != nil {
		s.metrics.ObserveAnalysisError(domain.CodeStorage)
		appLogger.Error("Failed to save analysis",
			zap.String("userID", userID),
			zap.String("analysisID", analysis.ID),
			zap.Error(err),
		)
		return nil, domain.NewStorageError("failed to save analysis", err)
	}

	s.metrics.ObserveAnalysis(analysis)
	appLogger.Info("Analysis created",
		zap.String("userID", userID),
		zap.String("analysisID", analysis.ID),
		zap.Int("fallbacks", len(analysis.Fallbacks)),
	)
	return analysis, nil
}

// GetAnalysis returns the analysis only to its owner; other users get
// ANALYSIS_NOT_FOUND so ids cannot be enumerated.
func (s *analysisServiceImpl) GetAnalysis(ctx context.Context, userID, analysisID string) (*domain.StudyAnalysis, error) {
	analysis, err := s.repo.GetByID(ctx, analysisID)
	if err != nil {
		return nil, repositoryError("failed to load analysis", err)
	}
	if analysis.UserID != userID {
		logger.Get().Debug("Analysis requested by non-owner",
			zap.String("analysisID", analysisID),
			zap.String("userID", userID),
		)
		return nil, domain.NewAnalysisNotFoundError(analysisID)
	}
	return analysis, nil
}

func (s *analysisServiceImpl) ListMyAnalyses(ctx context.Context, userID string) ([]*domain.StudyAnalysis, error) {
	if userID == "" {
		return nil, domain.NewUnauthorizedError("user is not authenticated")
	}

	res, err, shared := s.sfGroup.Do("user:"+userID, func() (interface{}, error) {
		return s.repo.ListByUser(ctx, userID)
	})
	if err != nil {
		logger.Get().Error("Failed to list analyses", zap.String("userID", userID), zap.Error(err))
		return nil, repositoryError("failed to list analyses", err)
	}
	if shared {
		logger.Get().Debug("Shared in-flight analysis listing", zap.String("userID", userID))
	}
	return res.([]*domain.StudyAnalysis), nil
}

func (s *analysisServiceImpl) ListAllAnalyses(ctx context.Context) ([]*domain.StudyAnalysis, error) {
	res, err, _ := s.sfGroup.Do("global", func() (interface{}, error) {
		return s.repo.ListAll(ctx)
	})
	if err != nil {
		logger.Get().Error("Failed to list all analyses", zap.Error(err))
		return nil, repositoryError("failed to list analyses", err)
	}
	return res.([]*domain.StudyAnalysis), nil
}

func (s *analysisServiceImpl) DeleteAnalysis(ctx context.Context, userID, analysisID string) error {
	if _, err := s.GetAnalysis(ctx, userID, analysisID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, analysisID, userID); err != nil {
		logger.Get().Error("Failed to delete analysis",
			zap.String("userID", userID),
			zap.String("analysisID", analysisID),
			zap.Error(err),
		)
		return repositoryError("failed to delete analysis", err)
	}
	logger.Get().Info("Analysis deleted", zap.String("userID", userID), zap.String("analysisID", analysisID))
	return nil
}

func (s *analysisServiceImpl) Questionnaire() []planner.Question {
	return planner.Questionnaire()
}

// repositoryError passes domain errors through and wraps everything else
// as a storage failure.
func repositoryError(message string, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return domain.NewStorageError(message, err)
}
