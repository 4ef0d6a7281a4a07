package allocation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"project-allocation-api/internal/models"
)

func member(weekly int, workload float64, skills ...models.MemberSkill) *models.Member {
	return &models.Member{
		ID:                 "m-1",
		Name:               "alice",
		WeeklyAvailability: weekly,
		CurrentWorkload:    workload,
		Skills:             skills,
	}
}

func taskWithSkills(hours float64, priority models.TaskPriority, skills ...models.TaskSkill) *models.Task {
	return &models.Task{
		ID:             "t-1",
		Title:          "task",
		EstimatedHours: hours,
		Priority:       priority,
		RequiredSkills: skills,
	}
}

func TestScoreMember_MissingSkillGatesToZero(t *testing.T) {
	task := taskWithSkills(10, models.PriorityMedium, models.TaskSkill{SkillID: "go", RequiredLevel: 3})
	m := member(40, 0, models.MemberSkill{SkillID: "python", ProficiencyLevel: 5})

	s := ScoreMember(task, m, m.CurrentWorkload)
	require.False(t, s.Eligible)
	require.Zero(t, s.Value)
	require.Equal(t, "missing required skill", s.Reason)
}

func TestScoreMember_UnderLeveledSkillGatesToZero(t *testing.T) {
	// One under-leveled skill disqualifies regardless of how well the
	// others match.
	task := taskWithSkills(10, models.PriorityMedium,
		models.TaskSkill{SkillID: "go", RequiredLevel: 2},
		models.TaskSkill{SkillID: "sql", RequiredLevel: 4},
	)
	m := member(40, 0,
		models.MemberSkill{SkillID: "go", ProficiencyLevel: 5},
		models.MemberSkill{SkillID: "sql", ProficiencyLevel: 3},
	)

	s := ScoreMember(task, m, m.CurrentWorkload)
	require.False(t, s.Eligible)
	require.Zero(t, s.Value)
	require.Equal(t, "insufficient skill level", s.Reason)
}

func TestScoreMember_InsufficientAvailabilityGatesToZero(t *testing.T) {
	task := taskWithSkills(30, models.PriorityUrgent, models.TaskSkill{SkillID: "go", RequiredLevel: 1})
	m := member(40, 20, models.MemberSkill{SkillID: "go", ProficiencyLevel: 5})

	s := ScoreMember(task, m, m.CurrentWorkload)
	require.False(t, s.Eligible)
	require.Zero(t, s.Value)
	require.Equal(t, "insufficient available hours", s.Reason)
}

func TestScoreMember_NoRequiredSkillsIsNeutral(t *testing.T) {
	task := taskWithSkills(10, models.PriorityLow)
	m := member(40, 0)

	s := ScoreMember(task, m, 0)
	require.True(t, s.Eligible)
	// skill 0.5*0.4 + availability (ratio 0.25 -> 0.75)*0.3 + workload 1.0*0.2 + bonus 0.025
	require.InDelta(t, 0.2+0.225+0.2+0.025, s.Value, 1e-9)
}

func TestAvailabilityScore_Boundaries(t *testing.T) {
	m := member(40, 0)

	// ratio exactly 0.5 is an efficient fit
	require.Equal(t, 1.0, availabilityScore(taskWithSkills(20, models.PriorityLow), m, 0))

	// just below 0.5 falls back to 0.5+ratio
	got := availabilityScore(taskWithSkills(19.9, models.PriorityLow), m, 0)
	require.Less(t, got, 1.0)
	require.InDelta(t, 0.5+19.9/40.0, got, 1e-9)
}

func TestWorkloadScore_Boundaries(t *testing.T) {
	m := member(40, 0)

	require.Equal(t, 1.0, workloadScore(m, 0))
	require.Equal(t, 0.0, workloadScore(m, 40))
	require.InDelta(t, 1.0-0.5*0.9, workloadScore(m, 20), 1e-9)
}

func TestWorkloadScore_ZeroAvailability(t *testing.T) {
	require.Equal(t, 1.0, workloadScore(member(0, 0), 0))
}

func TestScoreMember_WorkedExample(t *testing.T) {
	// weekly=40, workload=10, skill level 4 vs required 3, 20h HIGH task:
	// skill min(1,4/3)=1.0, availability ratio 20/30>=0.5 -> 1.0,
	// workload pct 25 -> 0.775, bonus 3*0.025.
	task := taskWithSkills(20, models.PriorityHigh, models.TaskSkill{SkillID: "go", RequiredLevel: 3})
	m := member(40, 10, models.MemberSkill{SkillID: "go", ProficiencyLevel: 4})

	s := ScoreMember(task, m, m.CurrentWorkload)
	require.True(t, s.Eligible)
	require.InDelta(t, 0.93, s.Value, 1e-9)
	require.GreaterOrEqual(t, s.Value, MinScore)
}

func TestScoreMember_ProficiencyCappedAtOne(t *testing.T) {
	task := taskWithSkills(20, models.PriorityLow, models.TaskSkill{SkillID: "go", RequiredLevel: 1})
	m := member(40, 0, models.MemberSkill{SkillID: "go", ProficiencyLevel: 5})

	s := ScoreMember(task, m, 0)
	require.True(t, s.Eligible)
	// skill capped at 1.0 despite 5/1 proficiency ratio
	require.InDelta(t, 0.4+0.3+0.2+0.025, s.Value, 1e-9)
}

func TestScoreMember_ThreadedWorkloadOverridesRecord(t *testing.T) {
	// The caller-supplied workload, not the stored field, drives the gates.
	task := taskWithSkills(30, models.PriorityMedium, models.TaskSkill{SkillID: "go", RequiredLevel: 1})
	m := member(40, 0, models.MemberSkill{SkillID: "go", ProficiencyLevel: 3})

	require.True(t, ScoreMember(task, m, 0).Eligible)
	require.False(t, ScoreMember(task, m, 20).Eligible)
}
