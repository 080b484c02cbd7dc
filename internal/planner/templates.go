package planner

import "study-analysis/internal/domain"

const saturdayIndex = 5

var weeklyTemplate = []string{
	"월: 신규 개념 학습 및 기본 문제 풀이",
	"화: 심화 개념 학습 및 응용 문제",
	"수: 기출문제 분석 및 오답 정리",
	"목: 취약 과목 집중 학습",
	"금: 실전 모의고사 응시",
	"토: 일주일 총복습 및 오답 정리",
	"일: 다음 주 학습 계획 수립",
}

const saturdayDoubleReview = "토: 일주일 총복습 및 심화 오답 정리 (2회 반복)"

var monthlyTemplate = []string{
	"전체 교재 진도율 점검",
	"월간 모의고사 성적 분석",
	"취약점 개선 현황 체크",
	"학습 전략 수정 및 보완",
	"다음 달 세부 계획 수립",
}

type subjectTemplate struct {
	name  string
	tasks []string
}

var subjectTemplates = []subjectTemplate{
	{name: "국어", tasks: []string{"문법 기본 개념 정리", "독해 전략 수립", "기출문제 분석", "실전 문제 풀이"}},
	{name: "영어", tasks: []string{"핵심 문법 정리", "어휘 암기", "독해 연습", "실전 문제 풀이"}},
	{name: "한국사", tasks: []string{"시대별 흐름 정리", "주요 사건 암기", "기출문제 분석", "실전 문제 풀이"}},
}

// placeholderSubjectScores is demo data; no scoring input feeds it yet.
var placeholderSubjectScores = []domain.SubjectScore{
	{Subject: "국어", Score: 70, TargetScore: 85},
	{Subject: "영어", Score: 65, TargetScore: 80},
	{Subject: "한국사", Score: 75, TargetScore: 90},
}

// WeeklyTasks returns the Monday-to-Sunday cadence. A low retention score
// swaps Saturday for a double review.
func WeeklyTasks(eff domain.EfficiencyProfile, s Settings) []string {
	tasks := append([]string(nil), weeklyTemplate...)
	if eff.Retention < s.RetentionReviewCutoff {
		tasks[saturdayIndex] = saturdayDoubleReview
	}
	return tasks
}

func MonthlyTasks() []string {
	return append([]string(nil), monthlyTemplate...)
}

// SubjectPlans assigns every subject the same daily hours, ordered by priority.
func SubjectPlans(eff domain.EfficiencyProfile, s Settings) map[string]domain.SubjectPlan {
	hours := s.StandardSubjectHours
	if eff.Overall > s.HighEfficiencyCutoff {
		hours = s.HighSubjectHours
	}

	plans := make(map[string]domain.SubjectPlan, len(subjectTemplates))
	for i, tmpl := range subjectTemplates {
		plans[tmpl.name] = domain.SubjectPlan{
			Priority: i + 1,
			Hours:    hours,
			Tasks:    append([]string(nil), tmpl.tasks...),
		}
	}
	return plans
}

func SubjectScores() []domain.SubjectScore {
	return append([]domain.SubjectScore(nil), placeholderSubjectScores...)
}
