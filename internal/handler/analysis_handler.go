package handler

import (
	"study-analysis/internal/domain"
	"study-analysis/internal/dto"
	"study-analysis/internal/logger"
	"study-analysis/internal/middleware"
	"study-analysis/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AnalysisHandler handles study-analysis HTTP requests
type AnalysisHandler struct {
	service service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler instance
func NewAnalysisHandler(service service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
	}
}

// CreateAnalysis godoc
// @Summary Analyze study habits
// @Description Scores the questionnaire answers and builds a dated study plan toward the target date
// @Tags analyses
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Questionnaire answers"
// @Success 201 {object} domain.StudyAnalysis
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses [post]
func (h *AnalysisHandler) CreateAnalysis(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Failed to parse analyze request", zap.Error(err))
		return domain.NewInvalidInputError("request body must be a JSON object with an answers map")
	}

	analysis, err := h.service.Analyze(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(analysis)
}

// ListAnalyses godoc
// @Summary List all analyses
// @Description Returns every stored analysis across users in insertion order. Requires an admin token.
// @Tags analyses
// @Produce json
// @Success 200 {object} dto.AnalysisListResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses [get]
func (h *AnalysisHandler) ListAnalyses(c *fiber.Ctx) error {
	analyses, err := h.service.ListAllAnalyses(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAnalysisListResponse(analyses))
}

// ListMyAnalyses godoc
// @Summary List my analyses
// @Description Returns the authenticated user's analyses in insertion order
// @Tags users
// @Produce json
// @Success 200 {object} dto.AnalysisListResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/me/analyses [get]
func (h *AnalysisHandler) ListMyAnalyses(c *fiber.Ctx) error {
	analyses, err := h.service.ListMyAnalyses(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAnalysisListResponse(analyses))
}

// GetAnalysis godoc
// @Summary Get an analysis
// @Description Returns one of the authenticated user's analyses
// @Tags analyses
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} domain.StudyAnalysis
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses/{id} [get]
func (h *AnalysisHandler) GetAnalysis(c *fiber.Ctx) error {
	analysis, err := h.service.GetAnalysis(c.Context(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(analysis)
}

// DeleteAnalysis godoc
// @Summary Delete an analysis
// @Description Removes one of the authenticated user's analyses
// @Tags analyses
// @Param id path string true "Analysis ID"
// @Success 204
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses/{id} [delete]
func (h *AnalysisHandler) DeleteAnalysis(c *fiber.Ctx) error {
	if err := h.service.DeleteAnalysis(c.Context(), middleware.UserID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetQuestionnaire godoc
// @Summary Get the questionnaire
// @Description Lists the questions the analysis reads and their declared options
// @Tags questionnaire
// @Produce json
// @Success 200 {object} dto.QuestionnaireResponse
// @Router /questionnaire [get]
func (h *AnalysisHandler) GetQuestionnaire(c *fiber.Ctx) error {
	questions := h.service.Questionnaire()
	resp := dto.QuestionnaireResponse{Questions: make([]dto.QuestionResponse, 0, len(questions))}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, dto.QuestionResponse{
			Key:     q.Key,
			Prompt:  q.Prompt,
			Options: q.Options,
		})
	}
	return c.JSON(resp)
}
