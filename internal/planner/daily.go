package planner

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"study-analysis/internal/domain"
)

type BlockKind string

const (
	BlockStudy BlockKind = "study"
	BlockRest  BlockKind = "rest"
)

// ScheduleBlock is one slot of the daily schedule. Start and End are hours
// after midnight and may be fractional.
type ScheduleBlock struct {
	Kind  BlockKind
	Start float64
	End   float64
}

func (b ScheduleBlock) Hours() float64 {
	return b.End - b.Start
}

// String renders the block with H:MM clock times.
func (b ScheduleBlock) String() string {
	span := formatClock(b.Start) + "-" + formatClock(b.End)
	if b.Kind == BlockStudy {
		return fmt.Sprintf("%s 집중 학습 (%s시간)", span, strconv.FormatFloat(b.Hours(), 'f', -1, 64))
	}
	return span + " 휴식 및 복습"
}

// PackDailyBlocks greedily splits the daily study-hour budget into study
// blocks no longer than the optimal block length, each followed by a rest
// block. Range answers without an upper bound, declared or not, use the
// default hours and are reported as fallbacks.
func PackDailyBlocks(answers domain.AnswerSet, eff domain.EfficiencyProfile, s Settings) ([]ScheduleBlock, []domain.OptionFallback) {
	var fallbacks fallbackLog

	studyTime := answers.Get(domain.QuestionStudyTime)
	if studyTime == "" {
		studyTime = s.DefaultStudyTime
	}
	hours, ok := parseUpperBound(studyTime)
	if !ok {
		hours = s.DefaultStudyHours
		fallbacks.add(domain.QuestionStudyTime, studyTime, strconv.FormatFloat(hours, 'f', -1, 64))
	}

	concentration := answers.Get(domain.QuestionConcentration)
	if concentration == "" {
		concentration = s.DefaultConcentration
	}
	concentrationTime, ok := parseUpperBound(concentration)
	if !ok {
		concentrationTime = s.DefaultConcentrationHours
		fallbacks.add(domain.QuestionConcentration, concentration, strconv.FormatFloat(concentrationTime, 'f', -1, 64))
	}

	return packBlocks(hours, OptimalBlockHours(concentrationTime, eff, s), startHour(answers, s), s.RestBlockHours), fallbacks
}

// OptimalBlockHours caps a study block by the concentration span and by
// the focus-dependent block length.
func OptimalBlockHours(concentrationTime float64, eff domain.EfficiencyProfile, s Settings) float64 {
	limit := s.LowFocusBlockHours
	if eff.Focus > s.FocusBlockCutoff {
		limit = s.HighFocusBlockHours
	}
	return math.Min(concentrationTime, limit)
}

// RenderSchedule formats the blocks as schedule lines.
func RenderSchedule(blocks []ScheduleBlock) []string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		lines = append(lines, b.String())
	}
	return lines
}

func packBlocks(hours, blockHours, start, rest float64) []ScheduleBlock {
	blocks := []ScheduleBlock{}
	if blockHours <= 0 {
		return blocks
	}

	remaining := hours
	current := start
	for remaining > 0 {
		study := math.Min(blockHours, remaining)
		blocks = append(blocks,
			ScheduleBlock{Kind: BlockStudy, Start: current, End: current + study},
			ScheduleBlock{Kind: BlockRest, Start: current + study, End: current + study + rest},
		)
		current += study + rest
		remaining -= study
	}
	return blocks
}

func startHour(answers domain.AnswerSet, s Settings) float64 {
	preferred := answers.Get(domain.QuestionPreferredTime)
	if preferred == "" {
		preferred = s.DefaultPreferredTime
	}
	if preferred == "오전" {
		return s.MorningStartHour
	}
	return s.AfternoonStartHour
}

// parseUpperBound reads the leading integer after the first dash of a range
// option such as "4-6시간". ok is false when there is no dash or no
// positive number after it.
func parseUpperBound(option string) (float64, bool) {
	_, upper, found := strings.Cut(option, "-")
	if !found {
		return 0, false
	}
	end := strings.IndexFunc(upper, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(upper)
	}
	n, err := strconv.Atoi(upper[:end])
	if err != nil || n <= 0 {
		return 0, false
	}
	return float64(n), true
}

// formatClock renders fractional hours as H:MM, rounding to the minute.
func formatClock(hours float64) string {
	minutes := int(math.Round(hours * 60))
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
