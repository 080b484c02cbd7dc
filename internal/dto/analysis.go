package dto

import "study-analysis/internal/domain"

// AnalyzeRequest is the questionnaire submission.
// @Description Request body for generating a study analysis
type AnalyzeRequest struct {
	// Answers maps a question key (studyTime, studyLocation, preferredTime, concentration) to the selected option.
	Answers map[string]string `json:"answers"`
	// TargetDate is the exam date as YYYY-MM-DD. The configured default is used when empty.
	TargetDate string `json:"target_date,omitempty" example:"2027-11-18"`
}

// AnalysisListResponse wraps a list of analyses.
// @Description List of stored study analyses
type AnalysisListResponse struct {
	Analyses []*domain.StudyAnalysis `json:"analyses"`
	Count    int                     `json:"count"`
}

func NewAnalysisListResponse(analyses []*domain.StudyAnalysis) AnalysisListResponse {
	if analyses == nil {
		analyses = []*domain.StudyAnalysis{}
	}
	return AnalysisListResponse{Analyses: analyses, Count: len(analyses)}
}

// QuestionResponse is one questionnaire entry.
type QuestionResponse struct {
	Key     string   `json:"key"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// QuestionnaireResponse lists the questions and their declared options.
// @Description Study-habit questionnaire
type QuestionnaireResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

// HealthResponse reports service and store health.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
