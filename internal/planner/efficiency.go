package planner

import "study-analysis/internal/domain"

// AnalyzeEfficiency maps the categorical answers to the efficiency profile.
// Missing or unknown answers resolve to the configured default option and
// are reported in the returned fallbacks.
func AnalyzeEfficiency(answers domain.AnswerSet, s Settings) (domain.EfficiencyProfile, []domain.OptionFallback) {
	var fallbacks fallbackLog

	preferred := answers.Get(domain.QuestionPreferredTime)
	timeScore, key, usedDefault := ResolveOption(preferred, s.Tables.TimePreferences, s.DefaultPreferredTime)
	if usedDefault {
		fallbacks.add(domain.QuestionPreferredTime, preferred, key)
	}

	location := answers.Get(domain.QuestionStudyLocation)
	locationScore, key, usedDefault := ResolveOption(location, s.Tables.StudyLocations, s.DefaultStudyLocation)
	if usedDefault {
		fallbacks.add(domain.QuestionStudyLocation, location, key)
	}

	concentration := answers.Get(domain.QuestionConcentration)
	concentrationScore, key, usedDefault := ResolveOption(concentration, s.Tables.ConcentrationSpans, s.DefaultConcentration)
	if usedDefault {
		fallbacks.add(domain.QuestionConcentration, concentration, key)
	}

	return domain.EfficiencyProfile{
		Overall:     (timeScore.Productivity + locationScore.Focus + concentrationScore.Efficiency) / 3,
		Focus:       (timeScore.Focus + locationScore.Focus) / 2,
		Consistency: (timeScore.Consistency + locationScore.Consistency) / 2,
		Retention:   concentrationScore.Retention,
	}, fallbacks
}

// Strengths lists the efficiency scores above the strength cutoff,
// in the order overall, focus, consistency, retention.
func Strengths(eff domain.EfficiencyProfile, s Settings) []string {
	strengths := []string{}
	if eff.Overall > s.StrengthCutoff {
		strengths = append(strengths, "높은 학습 효율성")
	}
	if eff.Focus > s.StrengthCutoff {
		strengths = append(strengths, "우수한 집중력")
	}
	if eff.Consistency > s.StrengthCutoff {
		strengths = append(strengths, "안정적인 학습 패턴")
	}
	if eff.Retention > s.StrengthCutoff {
		strengths = append(strengths, "높은 학습 내용 이해도")
	}
	return strengths
}

// Weaknesses lists the efficiency scores below the weakness cutoff.
func Weaknesses(eff domain.EfficiencyProfile, s Settings) []string {
	weaknesses := []string{}
	if eff.Overall < s.WeaknessCutoff {
		weaknesses = append(weaknesses, "전반적인 학습 효율성 개선 필요")
	}
	if eff.Focus < s.WeaknessCutoff {
		weaknesses = append(weaknesses, "집중력 향상 필요")
	}
	if eff.Consistency < s.WeaknessCutoff {
		weaknesses = append(weaknesses, "불안정한 학습 패턴")
	}
	if eff.Retention < s.WeaknessCutoff {
		weaknesses = append(weaknesses, "학습 내용 복습 필요")
	}
	return weaknesses
}
