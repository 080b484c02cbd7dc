package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"study-analysis/internal/domain"
	"study-analysis/internal/dto"
	"study-analysis/internal/handler"
	"study-analysis/internal/middleware"
	"study-analysis/internal/planner"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

type MockAnalysisService struct {
	AnalyzeFunc         func(ctx context.Context, userID string, req dto.AnalyzeRequest) (*domain.StudyAnalysis, error)
	GetAnalysisFunc     func(ctx context.Context, userID, analysisID string) (*domain.StudyAnalysis, error)
	ListMyAnalysesFunc  func(ctx context.Context, userID string) ([]*domain.StudyAnalysis, error)
	ListAllAnalysesFunc func(ctx context.Context) ([]*domain.StudyAnalysis, error)
	DeleteAnalysisFunc  func(ctx context.Context, userID, analysisID string) error
	QuestionnaireFunc   func() []planner.Question
}

func (m *MockAnalysisService) Analyze(ctx context.Context, userID string, req dto.AnalyzeRequest) (*domain.StudyAnalysis, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, userID, req)
	}
	panic("MockAnalysisService.AnalyzeFunc not implemented")
}

func (m *MockAnalysisService) GetAnalysis(ctx context.Context, userID, analysisID string) (*domain.StudyAnalysis, error) {
	if m.GetAnalysisFunc != nil {
		return m.GetAnalysisFunc(ctx, userID, analysisID)
	}
	panic("MockAnalysisService.GetAnalysisFunc not implemented")
}

func (m *MockAnalysisService) ListMyAnalyses(ctx context.Context, userID string) ([]*domain.StudyAnalysis, error) {
	if m.ListMyAnalysesFunc != nil {
		return m.ListMyAnalysesFunc(ctx, userID)
	}
	panic("MockAnalysisService.ListMyAnalysesFunc not implemented")
}

func (m *MockAnalysisService) ListAllAnalyses(ctx context.Context) ([]*domain.StudyAnalysis, error) {
	if m.ListAllAnalysesFunc != nil {
		return m.ListAllAnalysesFunc(ctx)
	}
	panic("MockAnalysisService.ListAllAnalysesFunc not implemented")
}

func (m *MockAnalysisService) DeleteAnalysis(ctx context.Context, userID, analysisID string) error {
	if m.DeleteAnalysisFunc != nil {
		return m.DeleteAnalysisFunc(ctx, userID, analysisID)
	}
	panic("MockAnalysisService.DeleteAnalysisFunc not implemented")
}

func (m *MockAnalysisService) Questionnaire() []planner.Question {
	if m.QuestionnaireFunc != nil {
		return m.QuestionnaireFunc()
	}
	return planner.Questionnaire()
}

type mockPinger struct{ err error }

func (p mockPinger) Ping(ctx context.Context) error { return p.err }

// setupApp mirrors the production routing with a fixed authenticated user.
func setupApp(svc *MockAnalysisService, userID string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewAnalysisHandler(svc)

	withUser := func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals(middleware.UserIDKey, userID)
		}
		return c.Next()
	}

	api := app.Group("/api")
	api.Get("/questionnaire", h.GetQuestionnaire)
	api.Post("/analyses", withUser, h.CreateAnalysis)
	api.Get("/analyses", withUser, h.ListAnalyses)
	api.Get("/analyses/:id", withUser, h.GetAnalysis)
	api.Delete("/analyses/:id", withUser, h.DeleteAnalysis)
	api.Get("/users/me/analyses", withUser, h.ListMyAnalyses)
	return app
}

func sampleAnalysis(id, userID string) *domain.StudyAnalysis {
	return &domain.StudyAnalysis{
		ID:         id,
		UserID:     userID,
		Date:       time.Date(2024, 6, 21, 9, 0, 0, 0, time.UTC),
		Efficiency: domain.EfficiencyProfile{Overall: 0.88, Focus: 0.875, Consistency: 0.825, Retention: 0.8},
		StudyPlan:  domain.StudyPlan{ID: "plan-" + id, UserID: userID},
	}
}

func TestCreateAnalysis(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockAnalysisService{
			AnalyzeFunc: func(ctx context.Context, userID string, req dto.AnalyzeRequest) (*domain.StudyAnalysis, error) {
				assert.Equal(t, "user-1", userID)
				assert.Equal(t, "오전", req.Answers[domain.QuestionPreferredTime])
				assert.Equal(t, "2027-11-18", req.TargetDate)
				return sampleAnalysis("a1", userID), nil
			},
		}
		body, _ := json.Marshal(dto.AnalyzeRequest{
			Answers:    map[string]string{domain.QuestionPreferredTime: "오전"},
			TargetDate: "2027-11-18",
		})
		req := httptest.NewRequest("POST", "/api/analyses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := setupApp(svc, "user-1").Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		var got domain.StudyAnalysis
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "a1", got.ID)
		assert.Equal(t, "plan-a1", got.StudyPlan.ID)
		assert.Equal(t, 0.875, got.Efficiency.Focus)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/analyses", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")

		resp, err := setupApp(&MockAnalysisService{}, "user-1").Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		var got middleware.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "INVALID_INPUT", got.Code)
	})

	t.Run("validation errors", func(t *testing.T) {
		svc := &MockAnalysisService{
			AnalyzeFunc: func(ctx context.Context, userID string, req dto.AnalyzeRequest) (*domain.StudyAnalysis, error) {
				return nil, domain.ValidationErrors{domain.NewMissingFieldError("answers.studyTime")}
			},
		}
		req := httptest.NewRequest("POST", "/api/analyses", bytes.NewBufferString(`{"answers":{}}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := setupApp(svc, "user-1").Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		var got middleware.ValidationErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Len(t, got.Errors, 1)
		assert.Equal(t, "answers.studyTime", got.Errors[0].Field)
	})

	t.Run("schedule window", func(t *testing.T) {
		svc := &MockAnalysisService{
			AnalyzeFunc: func(ctx context.Context, userID string, req dto.AnalyzeRequest) (*domain.StudyAnalysis, error) {
				return nil, domain.NewInvalidScheduleWindowError("2025-07-01", "2025-06-21", nil)
			},
		}
		req := httptest.NewRequest("POST", "/api/analyses", bytes.NewBufferString(`{"answers":{},"target_date":"2025-06-21"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := setupApp(svc, "user-1").Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestListAnalyses(t *testing.T) {
	svc := &MockAnalysisService{
		ListAllAnalysesFunc: func(ctx context.Context) ([]*domain.StudyAnalysis, error) {
			return []*domain.StudyAnalysis{sampleAnalysis("a1", "u1"), sampleAnalysis("a2", "u2")}, nil
		},
		ListMyAnalysesFunc: func(ctx context.Context, userID string) ([]*domain.StudyAnalysis, error) {
			assert.Equal(t, "u1", userID)
			return nil, nil
		},
	}
	app := setupApp(svc, "u1")

	t.Run("all", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/analyses", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		var got dto.AnalysisListResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, 2, got.Count)
		assert.Equal(t, "a2", got.Analyses[1].ID)
	})

	t.Run("mine is an empty array", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/users/me/analyses", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		var raw map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
		assert.Equal(t, []interface{}{}, raw["analyses"])
		assert.Equal(t, float64(0), raw["count"])
	})

	t.Run("storage failure", func(t *testing.T) {
		failing := &MockAnalysisService{
			ListAllAnalysesFunc: func(ctx context.Context) ([]*domain.StudyAnalysis, error) {
				return nil, domain.NewStorageError("failed to list analyses", errors.New("redis down"))
			},
		}
		resp, err := setupApp(failing, "u1").Test(httptest.NewRequest("GET", "/api/analyses", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestGetAnalysis(t *testing.T) {
	svc := &MockAnalysisService{
		GetAnalysisFunc: func(ctx context.Context, userID, analysisID string) (*domain.StudyAnalysis, error) {
			if analysisID != "a1" {
				return nil, domain.NewAnalysisNotFoundError(analysisID)
			}
			return sampleAnalysis("a1", userID), nil
		},
	}
	app := setupApp(svc, "u1")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analyses/a1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/analyses/zzz", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var got middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "ANALYSIS_NOT_FOUND", got.Code)
	assert.Equal(t, "zzz", got.Details["analysis_id"])
}

func TestDeleteAnalysis(t *testing.T) {
	var deleted string
	svc := &MockAnalysisService{
		DeleteAnalysisFunc: func(ctx context.Context, userID, analysisID string) error {
			assert.Equal(t, "u1", userID)
			deleted = analysisID
			return nil
		},
	}

	resp, err := setupApp(svc, "u1").Test(httptest.NewRequest("DELETE", "/api/analyses/a1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "a1", deleted)
}

func TestGetQuestionnaire(t *testing.T) {
	resp, err := setupApp(&MockAnalysisService{}, "").Test(httptest.NewRequest("GET", "/api/questionnaire", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var got dto.QuestionnaireResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Questions, 4)
	assert.Equal(t, domain.QuestionStudyTime, got.Questions[0].Key)
	assert.Contains(t, got.Questions[2].Options, "오전")
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedState  string
	}{
		{"store reachable", nil, fiber.StatusOK, "ok"},
		{"store down", errors.New("connection refused"), fiber.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", handler.NewHealthHandler(mockPinger{err: tt.pingErr}).Health)

			resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			var got dto.HealthResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, tt.expectedState, got.Status)
		})
	}
}
