package planner

import "study-analysis/internal/domain"

const (
	recommendOverall     = "전반적인 학습 효율성 향상을 위해 학습 환경과 시간대 조정이 필요합니다."
	recommendFocus       = "집중력 향상을 위해 뽀모도로 기법 활용을 추천합니다."
	recommendConsistency = "학습의 일관성을 위해 고정된 학습 시간과 장소 설정이 필요합니다."
)

// GenerateRecommendations applies the threshold rules in fixed order and
// always ends with the tip for the preferred time of day.
func GenerateRecommendations(eff domain.EfficiencyProfile, answers domain.AnswerSet, s Settings) []string {
	recommendations := []string{}

	if eff.Overall < s.OverallRecommendationCutoff {
		recommendations = append(recommendations, recommendOverall)
	}
	if eff.Focus < s.FocusRecommendationCutoff {
		recommendations = append(recommendations, recommendFocus)
	}
	if eff.Consistency < s.ConsistencyRecommendationCutoff {
		recommendations = append(recommendations, recommendConsistency)
	}

	tip, _, _ := ResolveOption(answers.Get(domain.QuestionPreferredTime), s.Tables.TimeTips, s.DefaultPreferredTime)
	return append(recommendations, tip)
}
