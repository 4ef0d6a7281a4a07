package models

import (
	"time"

	"gorm.io/gorm"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
	StatusBlocked    TaskStatus = "BLOCKED"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

// Score maps the priority to the integer used for task ordering and the
// allocation bonus: URGENT=4, HIGH=3, MEDIUM=2, LOW=1.
func (p TaskPriority) Score() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// TaskSkill is a skill requirement attached to a task.
type TaskSkill struct {
	TaskID        string `json:"-" gorm:"column:task_id;primaryKey"`
	SkillID       string `json:"skillId" gorm:"column:skill_id;primaryKey"`
	SkillName     string `json:"skillName,omitempty" gorm:"-"`
	RequiredLevel int    `json:"requiredLevel" gorm:"column:required_level"`
}

// TableName specifies the table name for TaskSkill
func (TaskSkill) TableName() string {
	return "task_skills"
}

// TaskDependency links a task to a task it depends on. Dependencies are
// informational only; the allocation engine does not order by them.
type TaskDependency struct {
	TaskID          string `gorm:"column:task_id;primaryKey"`
	DependsOnTaskID string `gorm:"column:depends_on_task_id;primaryKey"`
}

// TableName specifies the table name for TaskDependency
func (TaskDependency) TableName() string {
	return "task_dependencies"
}

// Task represents a unit of work inside a project
type Task struct {
	ID                 string       `json:"id" gorm:"primaryKey"`
	ProjectID          string       `json:"projectId" gorm:"column:project_id;index"`
	Title              string       `json:"title" gorm:"not null"`
	Description        string       `json:"description"`
	EstimatedHours     float64      `json:"estimatedHours" gorm:"column:estimated_hours"`
	Priority           TaskPriority `json:"priority" gorm:"default:'MEDIUM'"`
	Status             TaskStatus   `json:"status" gorm:"not null;default:'TODO'"`
	StartDate          *time.Time   `json:"startDate" gorm:"column:start_date"`
	Deadline           *time.Time   `json:"deadline"`
	AssignedMemberID   *string      `json:"assignedMemberId" gorm:"column:assigned_member_id;index"`
	AssignedMemberName string       `json:"assignedMemberName,omitempty" gorm:"-"`
	RequiredSkills     []TaskSkill  `json:"requiredSkills" gorm:"foreignKey:TaskID"`
	Dependencies       []string     `json:"dependencies" gorm:"-"`
	gorm.Model
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}

// IsAssigned reports whether the task already has a member.
func (t *Task) IsAssigned() bool {
	return t.AssignedMemberID != nil
}
