package models

import (
	"gorm.io/gorm"
)

// Skill is a catalog entry referenced by task requirements and member
// proficiencies
type Skill struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"unique;not null"`
	Category string `json:"category"`
	gorm.Model
}

// TableName specifies the table name for Skill Model
func (Skill) TableName() string {
	return "skills"
}
