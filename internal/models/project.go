package models

import (
	"time"

	"gorm.io/gorm"
)

// Project groups tasks; allocation runs one project at a time
type Project struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate" gorm:"column:start_date"`
	EndDate     *time.Time `json:"endDate" gorm:"column:end_date"`
	Tasks       []Task     `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
	gorm.Model
}

// TableName specifies the table name for Project Model
func (Project) TableName() string {
	return "projects"
}
