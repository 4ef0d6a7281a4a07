package models

import (
	"gorm.io/gorm"
)

// MemberSkill records a member's proficiency (1-5) in a skill.
type MemberSkill struct {
	MemberID         string `json:"-" gorm:"column:member_id;primaryKey"`
	SkillID          string `json:"skillId" gorm:"column:skill_id;primaryKey"`
	SkillName        string `json:"skillName,omitempty" gorm:"-"`
	ProficiencyLevel int    `json:"proficiencyLevel" gorm:"column:proficiency_level"`
}

// TableName specifies the table name for MemberSkill
func (MemberSkill) TableName() string {
	return "member_skills"
}

// Member represents a team member who can be assigned tasks
type Member struct {
	ID                 string        `json:"id" gorm:"primaryKey"`
	Name               string        `json:"name" gorm:"not null"`
	Email              string        `json:"email" gorm:"unique"`
	WeeklyAvailability int           `json:"weeklyAvailability" gorm:"column:weekly_availability"`
	CurrentWorkload    float64       `json:"currentWorkload" gorm:"column:current_workload"`
	Skills             []MemberSkill `json:"skills" gorm:"foreignKey:MemberID"`
	gorm.Model
}

// TableName specifies the table name for Member Model
func (Member) TableName() string {
	return "members"
}

// AvailableHours returns the remaining capacity, floored at zero.
func (m *Member) AvailableHours() float64 {
	if avail := float64(m.WeeklyAvailability) - m.CurrentWorkload; avail > 0 {
		return avail
	}
	return 0
}

// WorkloadPercentage returns the load as a percentage of weekly availability.
// A member with zero availability reports 0.
func (m *Member) WorkloadPercentage() float64 {
	if m.WeeklyAvailability == 0 {
		return 0
	}
	return m.CurrentWorkload / float64(m.WeeklyAvailability) * 100
}

// IsOverloaded reports whether the workload exceeds weekly availability.
func (m *Member) IsOverloaded() bool {
	return m.CurrentWorkload > float64(m.WeeklyAvailability)
}

// SkillLevel returns the member's proficiency in a skill, or 0 if absent.
func (m *Member) SkillLevel(skillID string) int {
	for _, s := range m.Skills {
		if s.SkillID == skillID {
			return s.ProficiencyLevel
		}
	}
	return 0
}
