package planner

import "study-analysis/internal/domain"

// Question is one entry of the study-habit questionnaire.
type Question struct {
	Key     string   `json:"key"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

var questionnaire = []Question{
	{
		Key:     domain.QuestionStudyTime,
		Prompt:  "하루 평균 학습 시간이 어느 정도인가요?",
		Options: []string{"2시간 미만", "2-4시간", "4-6시간", "6-8시간", "8시간 이상"},
	},
	{
		Key:     domain.QuestionStudyLocation,
		Prompt:  "주로 어디에서 공부하시나요?",
		Options: []string{"도서관", "스터디카페", "집", "학원"},
	},
	{
		Key:     domain.QuestionPreferredTime,
		Prompt:  "집중이 가장 잘 되는 시간대는 언제인가요?",
		Options: []string{"새벽", "오전", "오후", "저녁", "밤"},
	},
	{
		Key:     domain.QuestionConcentration,
		Prompt:  "한 번에 집중할 수 있는 시간은 어느 정도인가요?",
		Options: []string{"30분 미만", "30분-1시간", "1-2시간", "2-3시간", "3시간 이상"},
	},
}

// Questionnaire returns the questions the engine reads, with their declared options.
func Questionnaire() []Question {
	out := make([]Question, len(questionnaire))
	for i, q := range questionnaire {
		out[i] = Question{Key: q.Key, Prompt: q.Prompt, Options: append([]string(nil), q.Options...)}
	}
	return out
}

// ResolveOption looks value up in table and substitutes defaultKey when the
// value is missing or unknown. usedDefault reports the substitution.
func ResolveOption[T any](value string, table map[string]T, defaultKey string) (resolved T, key string, usedDefault bool) {
	if v, ok := table[value]; ok {
		return v, value, false
	}
	return table[defaultKey], defaultKey, true
}

type fallbackLog []domain.OptionFallback

func (f *fallbackLog) add(field, given, resolved string) {
	*f = append(*f, domain.OptionFallback{Field: field, Given: given, Resolved: resolved})
}
