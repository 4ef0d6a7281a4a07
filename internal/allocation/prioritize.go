package allocation

import (
	"sort"

	"project-allocation-api/internal/models"
)

// PrioritizeTasks orders a batch of unassigned tasks for allocation:
// highest priority first, then earliest deadline. Tasks without a deadline
// keep their relative order. The sort is stable and computed once per pass;
// it is not revisited as workloads change.
func PrioritizeTasks(tasks []models.Task) []models.Task {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]

		if a.Priority.Score() != b.Priority.Score() {
			return a.Priority.Score() > b.Priority.Score()
		}

		if a.Deadline != nil && b.Deadline != nil {
			return a.Deadline.Before(*b.Deadline)
		}
		return false
	})

	return sorted
}
