package models

import (
	"gorm.io/gorm"
)

// AlertType classifies an alert
type AlertType string

const (
	AlertOverload AlertType = "OVERLOAD"
	AlertConflict AlertType = "CONFLICT"
	AlertDelay    AlertType = "DELAY"
	AlertDeadline AlertType = "DEADLINE"
	AlertInfo     AlertType = "INFO"
)

// AlertSeverity ranks how urgent an alert is
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "LOW"
	SeverityMedium   AlertSeverity = "MEDIUM"
	SeverityHigh     AlertSeverity = "HIGH"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// Alert is a structured notification raised during allocation for human
// review; the engine only ever writes alerts, it never reads them back.
type Alert struct {
	ID        string        `json:"id" gorm:"primaryKey"`
	Type      AlertType     `json:"type" gorm:"not null"`
	Severity  AlertSeverity `json:"severity" gorm:"default:'MEDIUM'"`
	Title     string        `json:"title" gorm:"not null"`
	Message   string        `json:"message"`
	MemberID  *string       `json:"memberId" gorm:"column:member_id;index"`
	ProjectID *string       `json:"projectId" gorm:"column:project_id;index"`
	TaskID    *string       `json:"taskId" gorm:"column:task_id"`
	IsRead    bool          `json:"isRead" gorm:"column:is_read;default:false"`
	gorm.Model
}

// TableName specifies the table name for Alert Model
func (Alert) TableName() string {
	return "alerts"
}
