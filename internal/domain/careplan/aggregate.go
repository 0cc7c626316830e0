package careplan

import (
	"github.com/careops/careops/internal/domain/assessment"
)

// DefaultCompanionshipTask is appended when no instrument contributed a
// companionship task, so every plan carries a baseline relational-care task
// and the merged list is never empty.
var DefaultCompanionshipTask = TaskSpecification{
	TaskType:    TaskTypeCompanionship,
	Description: "Companionship and social engagement",
	Frequency:   "Each visit",
}

// MergeTasks concatenates the rule catalog's output across all assessment
// results, preserving the supplied order (most recently completed first; the
// caller does not re-sort). The companionship fallback is idempotent: it is
// appended only when no merged task already has the companionship type.
func MergeTasks(results []assessment.Result) []TaskSpecification {
	var tasks []TaskSpecification
	for _, res := range results {
		tasks = append(tasks, TasksForResult(res)...)
	}

	hasCompanionship := false
	for _, t := range tasks {
		if t.TaskType == TaskTypeCompanionship {
			hasCompanionship = true
			break
		}
	}
	if !hasCompanionship {
		tasks = append(tasks, DefaultCompanionshipTask)
	}
	return tasks
}
