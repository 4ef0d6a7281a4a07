package allocation

import (
	"fmt"

	"github.com/google/uuid"

	"project-allocation-api/internal/models"
)

// Emitter raises the structured notifications produced by an allocation
// pass. Writes are best-effort: the engine treats a failed alert write the
// same as any other per-task failure.
type Emitter struct {
	alerts AlertStore
}

// NewEmitter returns an Emitter backed by the given alert store.
func NewEmitter(alerts AlertStore) *Emitter {
	return &Emitter{alerts: alerts}
}

// EmitOverload records that assigning a task pushed a member past their
// weekly availability. newWorkload is the member's workload after the
// assignment.
func (e *Emitter) EmitOverload(member *models.Member, task *models.Task, newWorkload float64) error {
	pct := 0.0
	if member.WeeklyAvailability != 0 {
		pct = newWorkload / float64(member.WeeklyAvailability) * 100
	}

	alert := &models.Alert{
		ID:       uuid.NewString(),
		Type:     models.AlertOverload,
		Severity: models.SeverityHigh,
		Title:    "Member Overload Detected",
		Message: fmt.Sprintf(
			"Member '%s' is now overloaded with %.1f hours (%.1f%% capacity) after assigning task '%s'",
			member.Name, newWorkload, pct, task.Title,
		),
		MemberID: &member.ID,
		TaskID:   &task.ID,
	}
	return e.alerts.Create(alert)
}

// EmitUnassignable records that no member scored above the assignment
// threshold for a task.
func (e *Emitter) EmitUnassignable(task *models.Task, projectID string) error {
	alert := &models.Alert{
		ID:       uuid.NewString(),
		Type:     models.AlertConflict,
		Severity: models.SeverityCritical,
		Title:    "No Suitable Member Found",
		Message: fmt.Sprintf(
			"Could not find a suitable member for task '%s'. "+
				"Required skills may not be available or all members are at capacity.",
			task.Title,
		),
		ProjectID: &projectID,
		TaskID:    &task.ID,
	}
	return e.alerts.Create(alert)
}
