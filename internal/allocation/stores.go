package allocation

import (
	"project-allocation-api/internal/models"
)

// TaskStore is the task persistence the engine depends on.
type TaskStore interface {
	// FindUnassignedByProject returns the project's unassigned tasks with
	// their required skills and dependency ids populated.
	FindUnassignedByProject(projectID string) ([]models.Task, error)

	// Assign persists the task-to-member link. Assignment also resets the
	// task status to TODO regardless of its previous status.
	Assign(taskID, memberID string) error
}

// MemberStore is the member persistence the engine depends on.
type MemberStore interface {
	// FindAll returns every member in the system with skills populated.
	FindAll() ([]models.Member, error)

	// UpdateWorkload persists a member's new workload in hours.
	UpdateWorkload(memberID string, workload float64) error
}

// AlertStore persists alerts raised during allocation.
type AlertStore interface {
	Create(alert *models.Alert) error
}
