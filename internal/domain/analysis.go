package domain

import "time"

// Question keys of the study-habit questionnaire the engine reads.
const (
	QuestionStudyTime     = "studyTime"
	QuestionStudyLocation = "studyLocation"
	QuestionPreferredTime = "preferredTime"
	QuestionConcentration = "concentration"
)

// AnswerSet maps a question key to the single option the user selected.
type AnswerSet map[string]string

// Get returns the answer for key, or "" when unanswered.
func (a AnswerSet) Get(key string) string {
	if a == nil {
		return ""
	}
	return a[key]
}

// EfficiencyProfile holds the normalized study-efficiency scores, each in [0,1].
type EfficiencyProfile struct {
	Overall     float64 `json:"overall"`
	Focus       float64 `json:"focus"`
	Consistency float64 `json:"consistency"`
	Retention   float64 `json:"retention"`
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type TaskCategory string

const (
	TaskCategoryMain TaskCategory = "main"
	TaskCategorySub  TaskCategory = "sub"
)

// Phase is one of the four fixed plan stages. Duration is in whole months.
type Phase struct {
	Title    string
	Duration int
	Tasks    []string
	Priority Priority
}

type Milestone struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type StudyPlanTask struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	Priority    Priority     `json:"priority"`
	Status      TaskStatus   `json:"status"`
	Category    TaskCategory `json:"category"`
}

type StudyPlanPeriod struct {
	StartDate  string      `json:"startDate"`
	EndDate    string      `json:"endDate"`
	ExamDate   string      `json:"examDate,omitempty"`
	Milestones []Milestone `json:"milestones"`
}

type SubjectPlan struct {
	Priority int      `json:"priority"`
	Hours    int      `json:"hours"`
	Tasks    []string `json:"tasks"`
}

type StudyPlan struct {
	ID       string                 `json:"id"`
	UserID   string                 `json:"userId"`
	Period   StudyPlanPeriod        `json:"period"`
	Tasks    []StudyPlanTask        `json:"tasks"`
	Daily    []string               `json:"daily"`
	Weekly   []string               `json:"weekly"`
	Monthly  []string               `json:"monthly"`
	Subjects map[string]SubjectPlan `json:"subjects"`
}

type StudyHabits struct {
	StudyTime     string `json:"studyTime"`
	StudyLocation string `json:"studyLocation"`
	PreferredTime string `json:"preferredTime"`
	BreakInterval string `json:"breakInterval"`
	Concentration string `json:"concentration"`
	ReviewMethod  string `json:"reviewMethod"`
}

type SubjectScore struct {
	Subject     string `json:"subject"`
	Score       int    `json:"score"`
	TargetScore int    `json:"targetScore"`
}

// OptionFallback records an answer the engine replaced with a default: a
// missing or undeclared option, or a range option with no parseable upper
// bound (for example the declared "8시간 이상"), whose hours fall back to the
// configured default.
type OptionFallback struct {
	Field    string `json:"field"`
	Given    string `json:"given"`
	Resolved string `json:"resolved"`
}

// StudyAnalysis is the persisted result of one questionnaire completion.
type StudyAnalysis struct {
	ID              string            `json:"id"`
	UserID          string            `json:"userId"`
	Date            time.Time         `json:"date"`
	TargetDate      string            `json:"targetDate,omitempty"`
	StudyHabits     StudyHabits       `json:"studyHabits"`
	SubjectScores   []SubjectScore    `json:"subjectScores"`
	Strengths       []string          `json:"strengths"`
	Weaknesses      []string          `json:"weaknesses"`
	Recommendations []string          `json:"recommendations"`
	Efficiency      EfficiencyProfile `json:"efficiency"`
	Fallbacks       []OptionFallback  `json:"fallbacks,omitempty"`
	StudyPlan       StudyPlan         `json:"studyPlan"`
}
