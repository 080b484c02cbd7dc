package planner

import (
	"errors"
	"time"

	"study-analysis/internal/domain"
	"study-analysis/internal/util"

	"go.uber.org/zap"
)

const (
	defaultBreakInterval = "30분"
	defaultReviewMethod  = "요약 노트"
)

// Engine turns a questionnaire answer set into a StudyAnalysis. It performs
// no I/O; persistence is the caller's job.
type Engine struct {
	settings Settings
	now      func() time.Time
	newID    func() string
	logger   *zap.Logger
}

type Option func(*Engine)

// WithClock fixes the engine's notion of "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

func NewEngine(settings Settings, opts ...Option) *Engine {
	e := &Engine{
		settings: settings,
		now:      time.Now,
		newID:    util.NewULID,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Settings() Settings {
	return e.settings
}

// PlanResult is a generated plan with the inputs derived on the way.
type PlanResult struct {
	Plan       *domain.StudyPlan
	Efficiency domain.EfficiencyProfile
	Fallbacks  []domain.OptionFallback
	Months     int
}

// GeneratePlan builds the study plan from today to targetDate
// (YYYY-MM-DD, empty for the configured default).
func (e *Engine) GeneratePlan(userID string, answers domain.AnswerSet, targetDate string) (*PlanResult, error) {
	if targetDate == "" {
		targetDate = e.settings.TargetDate
	}
	target, err := time.Parse(dateLayout, targetDate)
	if err != nil {
		return nil, domain.NewInvalidInputError("target date must be formatted as YYYY-MM-DD").
			WithContext("target_date", targetDate)
	}

	today := dateOnly(e.now().UTC())
	eff, fallbacks := AnalyzeEfficiency(answers, e.settings)

	phases, months, err := AllocatePhases(today, target, eff, e.settings)
	if err != nil {
		if errors.Is(err, ErrInvalidScheduleWindow) {
			return nil, domain.NewInvalidScheduleWindowError(today.Format(dateLayout), targetDate, err)
		}
		return nil, err
	}
	milestones, tasks := BuildTimeline(phases, today)

	blocks, dailyFallbacks := PackDailyBlocks(answers, eff, e.settings)
	fallbacks = append(fallbacks, dailyFallbacks...)

	plan := &domain.StudyPlan{
		ID:     e.newID(),
		UserID: userID,
		Period: domain.StudyPlanPeriod{
			StartDate:  today.Format(dateLayout),
			EndDate:    target.Format(dateLayout),
			ExamDate:   targetDate,
			Milestones: milestones,
		},
		Tasks:    tasks,
		Daily:    RenderSchedule(blocks),
		Weekly:   WeeklyTasks(eff, e.settings),
		Monthly:  MonthlyTasks(),
		Subjects: SubjectPlans(eff, e.settings),
	}

	return &PlanResult{Plan: plan, Efficiency: eff, Fallbacks: fallbacks, Months: months}, nil
}

// Analyze runs the full engine and assembles the analysis record.
func (e *Engine) Analyze(userID string, answers domain.AnswerSet, targetDate string) (*domain.StudyAnalysis, error) {
	result, err := e.GeneratePlan(userID, answers, targetDate)
	if err != nil {
		return nil, err
	}

	for _, fb := range result.Fallbacks {
		e.logger.Warn("Answer resolved to default option",
			zap.String("userID", userID),
			zap.String("field", fb.Field),
			zap.String("given", fb.Given),
			zap.String("resolved", fb.Resolved),
		)
	}

	eff := result.Efficiency
	analysis := &domain.StudyAnalysis{
		ID:              e.newID(),
		UserID:          userID,
		Date:            e.now().UTC(),
		TargetDate:      result.Plan.Period.ExamDate,
		StudyHabits:     e.studyHabits(answers),
		SubjectScores:   SubjectScores(),
		Strengths:       Strengths(eff, e.settings),
		Weaknesses:      Weaknesses(eff, e.settings),
		Recommendations: GenerateRecommendations(eff, answers, e.settings),
		Efficiency:      eff,
		Fallbacks:       result.Fallbacks,
		StudyPlan:       *result.Plan,
	}

	e.logger.Debug("Study analysis generated",
		zap.String("analysisID", analysis.ID),
		zap.String("userID", userID),
		zap.Int("months", result.Months),
		zap.Float64("overall", eff.Overall),
		zap.Int("tasks", len(analysis.StudyPlan.Tasks)),
	)
	return analysis, nil
}

func (e *Engine) studyHabits(answers domain.AnswerSet) domain.StudyHabits {
	return domain.StudyHabits{
		StudyTime:     orDefault(answers.Get(domain.QuestionStudyTime), e.settings.DefaultStudyTime),
		StudyLocation: orDefault(answers.Get(domain.QuestionStudyLocation), e.settings.DefaultStudyLocation),
		PreferredTime: orDefault(answers.Get(domain.QuestionPreferredTime), e.settings.DefaultPreferredTime),
		BreakInterval: defaultBreakInterval,
		Concentration: orDefault(answers.Get(domain.QuestionConcentration), e.settings.DefaultConcentration),
		ReviewMethod:  defaultReviewMethod,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
