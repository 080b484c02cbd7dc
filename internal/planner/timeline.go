package planner

import (
	"fmt"
	"time"

	"study-analysis/internal/domain"
)

const dateLayout = "2006-01-02"

// BuildTimeline walks the phases from start, placing one milestone at each
// phase boundary and emitting a main task plus one sub task per phase
// activity. Sub tasks share their phase's window.
func BuildTimeline(phases []domain.Phase, start time.Time) ([]domain.Milestone, []domain.StudyPlanTask) {
	milestones := make([]domain.Milestone, 0, len(phases))
	tasks := make([]domain.StudyPlanTask, 0, len(phases)*5)

	current := dateOnly(start)
	for i, phase := range phases {
		phaseEnd := current.AddDate(0, phase.Duration, 0)
		startStr, endStr := current.Format(dateLayout), phaseEnd.Format(dateLayout)

		milestones = append(milestones, domain.Milestone{
			Date:        endStr,
			Description: fmt.Sprintf("%s 완료", phase.Title),
			Completed:   false,
		})

		tasks = append(tasks, domain.StudyPlanTask{
			ID:          fmt.Sprintf("phase-%d-main", i+1),
			Title:       phase.Title,
			Description: fmt.Sprintf("%s 단계", phase.Title),
			StartDate:   startStr,
			EndDate:     endStr,
			Priority:    phase.Priority,
			Status:      domain.TaskStatusPending,
			Category:    domain.TaskCategoryMain,
		})

		for j, activity := range phase.Tasks {
			tasks = append(tasks, domain.StudyPlanTask{
				ID:          fmt.Sprintf("phase-%d-sub-%d", i+1, j+1),
				Title:       activity,
				Description: fmt.Sprintf("%s - %s", phase.Title, activity),
				StartDate:   startStr,
				EndDate:     endStr,
				Priority:    domain.PriorityMedium,
				Status:      domain.TaskStatusPending,
				Category:    domain.TaskCategorySub,
			})
		}

		current = phaseEnd
	}

	return milestones, tasks
}
