package store

import (
	"gorm.io/gorm"

	"project-allocation-api/internal/models"
)

// GormMemberStore persists members through GORM.
type GormMemberStore struct {
	db *gorm.DB
}

// NewMemberStore returns a member store bound to db.
func NewMemberStore(db *gorm.DB) *GormMemberStore {
	return &GormMemberStore{db: db}
}

// FindAll returns every member with their skill set populated, ordered by
// name. Allocation scans all members in the system, not a project subset.
func (s *GormMemberStore) FindAll() ([]models.Member, error) {
	var members []models.Member
	err := s.db.Preload("Skills").Order("name").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// FindByID returns one member with skills populated.
func (s *GormMemberStore) FindByID(id string) (*models.Member, error) {
	var member models.Member
	if err := s.db.Preload("Skills").Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateWorkload persists a member's new workload in hours.
func (s *GormMemberStore) UpdateWorkload(memberID string, workload float64) error {
	return s.db.Model(&models.Member{}).
		Where("id = ?", memberID).
		Update("current_workload", workload).Error
}

// AddSkill upserts a member's proficiency in a skill.
func (s *GormMemberStore) AddSkill(memberID, skillID string, proficiencyLevel int) error {
	skill := models.MemberSkill{MemberID: memberID, SkillID: skillID, ProficiencyLevel: proficiencyLevel}
	return s.db.Save(&skill).Error
}

// RemoveSkill deletes a member's proficiency record for a skill.
func (s *GormMemberStore) RemoveSkill(memberID, skillID string) error {
	return s.db.
		Where("member_id = ? AND skill_id = ?", memberID, skillID).
		Delete(&models.MemberSkill{}).Error
}
