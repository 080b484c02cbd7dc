package planner

import "study-analysis/internal/config"

// TimeScore is the efficiency triple for a preferred time of day.
type TimeScore struct {
	Productivity float64
	Focus        float64
	Consistency  float64
}

// LocationScore is the efficiency triple for a study location.
type LocationScore struct {
	Focus       float64
	Consistency float64
	Environment float64
}

// ConcentrationScore is the efficiency pair for a concentration span.
type ConcentrationScore struct {
	Efficiency float64
	Retention  float64
}

// Tables are the static lookup tables of the efficiency model.
type Tables struct {
	TimePreferences    map[string]TimeScore
	StudyLocations     map[string]LocationScore
	ConcentrationSpans map[string]ConcentrationScore
	// TimeTips holds the time-of-day recommendation appended to every analysis.
	TimeTips map[string]string
}

// Settings carries every tunable constant of the engine.
type Settings struct {
	Tables Tables

	DefaultPreferredTime string
	DefaultStudyLocation string
	DefaultConcentration string
	DefaultStudyTime     string

	// TargetDate is used when a request names no exam date (YYYY-MM-DD).
	TargetDate string
	// RedistributeRemainder adds the floor-rounding remainder to the final
	// phase so phase durations sum exactly to the plan length in months.
	RedistributeRemainder bool

	HighEfficiencyCutoff    float64
	HighEfficiencyFractions [4]float64
	StandardFractions       [4]float64

	StrengthCutoff float64
	WeaknessCutoff float64

	OverallRecommendationCutoff     float64
	FocusRecommendationCutoff       float64
	ConsistencyRecommendationCutoff float64
	RetentionReviewCutoff           float64

	MorningStartHour          float64
	AfternoonStartHour        float64
	FocusBlockCutoff          float64
	HighFocusBlockHours       float64
	LowFocusBlockHours        float64
	RestBlockHours            float64
	DefaultStudyHours         float64
	DefaultConcentrationHours float64

	HighSubjectHours     int
	StandardSubjectHours int
}

// DefaultTables returns the built-in efficiency lookup tables.
func DefaultTables() Tables {
	return Tables{
		TimePreferences: map[string]TimeScore{
			"새벽": {Productivity: 0.95, Focus: 0.9, Consistency: 0.85},
			"오전": {Productivity: 0.9, Focus: 0.85, Consistency: 0.8},
			"오후": {Productivity: 0.8, Focus: 0.75, Consistency: 0.75},
			"저녁": {Productivity: 0.75, Focus: 0.7, Consistency: 0.7},
			"밤":  {Productivity: 0.7, Focus: 0.65, Consistency: 0.65},
		},
		StudyLocations: map[string]LocationScore{
			"도서관":   {Focus: 0.9, Consistency: 0.85, Environment: 0.9},
			"스터디카페": {Focus: 0.85, Consistency: 0.8, Environment: 0.85},
			"집":     {Focus: 0.7, Consistency: 0.75, Environment: 0.7},
			"학원":    {Focus: 0.8, Consistency: 0.9, Environment: 0.8},
		},
		ConcentrationSpans: map[string]ConcentrationScore{
			"30분 미만":  {Efficiency: 0.6, Retention: 0.5},
			"30분-1시간": {Efficiency: 0.7, Retention: 0.65},
			"1-2시간":   {Efficiency: 0.85, Retention: 0.8},
			"2-3시간":   {Efficiency: 0.9, Retention: 0.85},
			"3시간 이상":  {Efficiency: 0.95, Retention: 0.9},
		},
		TimeTips: map[string]string{
			"새벽": "컨디션 관리와 충분한 수면이 중요합니다.",
			"오전": "가장 집중력이 높은 시간대를 활용해 중요 과목을 학습하세요.",
			"오후": "점심 식사 후 졸음 방지를 위한 가벼운 운동을 추천합니다.",
			"저녁": "하루 동안의 학습 내용을 정리하고 복습하기 좋은 시간입니다.",
			"밤":  "수면 시간 확보를 위해 학습 시간을 조절하세요.",
		},
	}
}

// DefaultSettings returns the engine constants used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Tables: DefaultTables(),

		DefaultPreferredTime: "오전",
		DefaultStudyLocation: "도서관",
		DefaultConcentration: "1-2시간",
		DefaultStudyTime:     "4-6시간",

		TargetDate: "2025-06-21",

		HighEfficiencyCutoff:    0.8,
		HighEfficiencyFractions: [4]float64{0.2, 0.3, 0.3, 0.2},
		StandardFractions:       [4]float64{0.3, 0.25, 0.25, 0.2},

		StrengthCutoff: 0.8,
		WeaknessCutoff: 0.7,

		OverallRecommendationCutoff:     0.8,
		FocusRecommendationCutoff:       0.75,
		ConsistencyRecommendationCutoff: 0.8,
		RetentionReviewCutoff:           0.8,

		MorningStartHour:          9,
		AfternoonStartHour:        14,
		FocusBlockCutoff:          0.8,
		HighFocusBlockHours:       2,
		LowFocusBlockHours:        1.5,
		RestBlockHours:            0.5,
		DefaultStudyHours:         6,
		DefaultConcentrationHours: 2,

		HighSubjectHours:     3,
		StandardSubjectHours: 2,
	}
}

// SettingsFromConfig overlays the configured planner constants on the defaults.
func SettingsFromConfig(cfg config.PlannerConfig) Settings {
	s := DefaultSettings()
	if cfg.TargetDate != "" {
		s.TargetDate = cfg.TargetDate
	}
	s.RedistributeRemainder = cfg.RedistributeRemainder

	setIfPositive(&s.HighEfficiencyCutoff, cfg.HighEfficiencyCutoff)
	setIfPositive(&s.StrengthCutoff, cfg.StrengthCutoff)
	setIfPositive(&s.WeaknessCutoff, cfg.WeaknessCutoff)
	setIfPositive(&s.OverallRecommendationCutoff, cfg.OverallRecommendationCutoff)
	setIfPositive(&s.FocusRecommendationCutoff, cfg.FocusRecommendationCutoff)
	setIfPositive(&s.ConsistencyRecommendationCutoff, cfg.ConsistencyRecommendationCutoff)
	setIfPositive(&s.RetentionReviewCutoff, cfg.RetentionReviewCutoff)
	setIfPositive(&s.FocusBlockCutoff, cfg.FocusBlockCutoff)
	setIfPositive(&s.HighFocusBlockHours, cfg.HighFocusBlockHours)
	setIfPositive(&s.LowFocusBlockHours, cfg.LowFocusBlockHours)
	setIfPositive(&s.RestBlockHours, cfg.RestBlockHours)
	setIfPositive(&s.DefaultStudyHours, cfg.DefaultStudyHours)
	setIfPositive(&s.DefaultConcentrationHours, cfg.DefaultConcentrationHours)

	if len(cfg.HighEfficiencyFractions) == 4 {
		copy(s.HighEfficiencyFractions[:], cfg.HighEfficiencyFractions)
	}
	if len(cfg.StandardFractions) == 4 {
		copy(s.StandardFractions[:], cfg.StandardFractions)
	}
	return s
}

func setIfPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}
