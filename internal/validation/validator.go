package validation

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"study-analysis/internal/domain"
	"study-analysis/internal/dto"
	"study-analysis/internal/planner"
)

const maxAnswerLength = 100

// Validator provides request validation functionality
type Validator struct {
	questions []planner.Question
	strict    bool
}

// NewValidator builds a validator for the given questionnaire. In strict
// mode every question must be answered with one of its declared options;
// otherwise unknown options are left for the engine to resolve to defaults.
func NewValidator(questions []planner.Question, strict bool) *Validator {
	return &Validator{questions: questions, strict: strict}
}

// ValidateAnalyzeRequest validates a questionnaire submission.
func (v *Validator) ValidateAnalyzeRequest(req dto.AnalyzeRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if td := strings.TrimSpace(req.TargetDate); td != "" {
		if _, err := time.Parse("2006-01-02", td); err != nil {
			errors = append(errors, domain.NewInvalidFormatError("target_date", req.TargetDate))
		}
	}

	keys := make([]string, 0, len(req.Answers))
	for key := range req.Answers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if utf8.RuneCountInString(req.Answers[key]) > maxAnswerLength {
			errors = append(errors, domain.NewInvalidFormatError("answers."+key, req.Answers[key]))
		}
	}

	if !v.strict {
		return errors
	}

	for _, q := range v.questions {
		value, ok := req.Answers[q.Key]
		if !ok || strings.TrimSpace(value) == "" {
			errors = append(errors, domain.NewMissingFieldError("answers."+q.Key))
			continue
		}
		if !contains(q.Options, value) {
			errors = append(errors, domain.NewInvalidOptionError("answers."+q.Key, value, q.Options))
		}
	}

	return errors
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
