package planner

import (
	"errors"
	"math"
	"time"

	"study-analysis/internal/domain"
)

// ErrInvalidScheduleWindow is returned when the target date is not after today.
var ErrInvalidScheduleWindow = errors.New("target date must be after the start date")

// floorEpsilon keeps months*fraction products that land just below an
// integer from flooring one month short.
const floorEpsilon = 1e-9

type phaseTemplate struct {
	title string
	tasks []string
}

var phaseTemplates = [4]phaseTemplate{
	{
		title: "기초 다지기",
		tasks: []string{"기본서 1회독", "핵심 개념 정리", "기초 문제 풀이", "취약 분야 파악"},
	},
	{
		title: "심화 학습",
		tasks: []string{"기본서 2회독", "심화 개념 학습", "기출문제 분석", "오답 노트 작성"},
	},
	{
		title: "실전 연습",
		tasks: []string{"실전 문제 풀이", "시간 관리 연습", "취약점 보완", "모의고사 응시"},
	},
	{
		title: "최종 점검",
		tasks: []string{"전 범위 최종 정리", "오답 총정리", "실전 감각 완성", "마지막 취약점 보완"},
	},
}

// PlanMonths returns the plan length in months, ceil(days/30), between two
// calendar dates.
func PlanMonths(today, target time.Time) (int, error) {
	totalDays := daysBetween(today, target)
	if totalDays <= 0 {
		return 0, ErrInvalidScheduleWindow
	}
	return (totalDays + 29) / 30, nil
}

// AllocatePhases sizes the four plan phases. Each duration is
// floor(months * fraction); the remainder is dropped unless
// Settings.RedistributeRemainder adds it to the final phase.
func AllocatePhases(today, target time.Time, eff domain.EfficiencyProfile, s Settings) ([]domain.Phase, int, error) {
	months, err := PlanMonths(today, target)
	if err != nil {
		return nil, 0, err
	}

	fractions := s.StandardFractions
	if eff.Overall > s.HighEfficiencyCutoff {
		fractions = s.HighEfficiencyFractions
	}

	phases := make([]domain.Phase, 0, len(phaseTemplates))
	allocated := 0
	for i, tmpl := range phaseTemplates {
		duration := int(math.Floor(float64(months)*fractions[i] + floorEpsilon))
		if duration < 0 {
			duration = 0
		}
		allocated += duration
		phases = append(phases, domain.Phase{
			Title:    tmpl.title,
			Duration: duration,
			Tasks:    append([]string(nil), tmpl.tasks...),
			Priority: domain.PriorityHigh,
		})
	}

	if s.RedistributeRemainder && allocated < months {
		phases[len(phases)-1].Duration += months - allocated
	}

	return phases, months, nil
}

// ValidateDefaultTarget reports whether requests without a target date can
// be planned on today. It returns ErrInvalidScheduleWindow when the
// configured default is not after today.
func ValidateDefaultTarget(s Settings, today time.Time) error {
	target, err := time.Parse(dateLayout, s.TargetDate)
	if err != nil {
		return err
	}
	_, err = PlanMonths(today, target)
	return err
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts calendar days via Unix seconds; time.Duration
// saturates for windows longer than about 292 years.
func daysBetween(from, to time.Time) int {
	return int((dateOnly(to).Unix() - dateOnly(from).Unix()) / 86400)
}
