package allocation

import (
	"project-allocation-api/internal/models"
)

// Component weights of the suitability score. The priority bonus is added
// on top of the weighted sum, so the maximum total is slightly above 1.0;
// that headroom is intentional and never clamped.
const (
	skillWeight        = 0.4
	availabilityWeight = 0.3
	workloadWeight     = 0.2
	priorityBonusUnit  = 0.025

	// MinScore is the threshold below which no assignment is made.
	MinScore = 0.3
)

// Score is the result of evaluating one member for one task. Eligible is
// false when a hard gate fired (missing skill, insufficient capacity);
// Value is 0 in that case so gated members are never selected.
type Score struct {
	Eligible bool
	Value    float64
	Reason   string
}

// ScoreMember computes the suitability of a member for a task.
// currentWorkload is the member's workload as seen at this point of the
// allocation pass; it may already include assignments made earlier in the
// same pass.
func ScoreMember(task *models.Task, member *models.Member, currentWorkload float64) Score {
	skillScore, reason := skillScore(task, member)
	if skillScore == 0 {
		return Score{Reason: reason}
	}

	availScore := availabilityScore(task, member, currentWorkload)
	if availScore == 0 {
		return Score{Reason: "insufficient available hours"}
	}

	total := skillScore*skillWeight +
		availScore*availabilityWeight +
		workloadScore(member, currentWorkload)*workloadWeight +
		float64(task.Priority.Score())*priorityBonusUnit

	return Score{Eligible: true, Value: total}
}

// skillScore returns a value in [0,1]. A task with no skill requirements
// scores a neutral 0.5. One missing or under-leveled skill zeroes the whole
// component: it is an all-or-nothing gate.
func skillScore(task *models.Task, member *models.Member) (float64, string) {
	if len(task.RequiredSkills) == 0 {
		return 0.5, ""
	}

	totalProficiency := 0
	totalRequired := 0
	for _, req := range task.RequiredSkills {
		totalRequired += req.RequiredLevel

		level := member.SkillLevel(req.SkillID)
		if level == 0 {
			return 0, "missing required skill"
		}
		if level < req.RequiredLevel {
			return 0, "insufficient skill level"
		}
		totalProficiency += level
	}

	// All requirements met; reward proficiency above the minimum, capped.
	score := float64(totalProficiency) / float64(totalRequired)
	if score > 1.0 {
		score = 1.0
	}
	return score, ""
}

// availabilityScore returns 0 when the member lacks the hours for the task
// (hard gate). Otherwise it favors members whose remaining slack is well
// used: a task consuming at least half the slack scores 1.0, smaller tasks
// get 0.5 plus the usage ratio.
func availabilityScore(task *models.Task, member *models.Member, currentWorkload float64) float64 {
	availableHours := float64(member.WeeklyAvailability) - currentWorkload

	if availableHours < task.EstimatedHours {
		return 0
	}

	ratio := task.EstimatedHours / availableHours
	if ratio >= 0.5 {
		return 1.0
	}
	return 0.5 + ratio
}

// workloadScore favors less-loaded members: 1.0 at 0% load declining
// linearly to 0.1 just under 100%, and 0 at or beyond capacity.
func workloadScore(member *models.Member, currentWorkload float64) float64 {
	if member.WeeklyAvailability == 0 {
		return 1.0
	}

	pct := currentWorkload / float64(member.WeeklyAvailability) * 100
	if pct >= 100 {
		return 0
	}
	return 1.0 - (pct / 100 * 0.9)
}
