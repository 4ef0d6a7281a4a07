package store

import (
	"gorm.io/gorm"

	"project-allocation-api/internal/models"
)

// GormAlertStore persists alerts through GORM.
type GormAlertStore struct {
	db *gorm.DB
}

// NewAlertStore returns an alert store bound to db.
func NewAlertStore(db *gorm.DB) *GormAlertStore {
	return &GormAlertStore{db: db}
}

// Create persists a new alert.
func (s *GormAlertStore) Create(alert *models.Alert) error {
	return s.db.Create(alert).Error
}

// FindAll returns alerts newest first, optionally only unread ones.
func (s *GormAlertStore) FindAll(unreadOnly bool) ([]models.Alert, error) {
	query := s.db.Order("created_at desc")
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	var alerts []models.Alert
	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// FindByID returns one alert.
func (s *GormAlertStore) FindByID(id string) (*models.Alert, error) {
	var alert models.Alert
	if err := s.db.Where("id = ?", id).First(&alert).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

// UnreadCount returns the number of unread alerts.
func (s *GormAlertStore) UnreadCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.Alert{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

// MarkRead flags one alert as read.
func (s *GormAlertStore) MarkRead(id string) error {
	return s.db.Model(&models.Alert{}).Where("id = ?", id).Update("is_read", true).Error
}

// MarkAllRead flags every alert as read.
func (s *GormAlertStore) MarkAllRead() error {
	return s.db.Model(&models.Alert{}).Where("is_read = ?", false).Update("is_read", true).Error
}

// Delete removes one alert.
func (s *GormAlertStore) Delete(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.Alert{}).Error
}
