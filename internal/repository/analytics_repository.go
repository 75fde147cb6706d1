package repository

import (
	"Stash/internal/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventCount struct {
	EventType models.EventType `json:"event_type"`
	Count     int64            `json:"count"`
}

type AnalyticsRepository interface {
	Create(event *models.AnalyticsEvent) error
	CountByEventType(userID uuid.UUID, since time.Time) ([]EventCount, error)
	CountForRelated(relatedType models.RelatedType, relatedID uuid.UUID, since time.Time) (int64, error)
	DeleteBefore(cutoff time.Time) (int64, error)
}

type AnalyticsRepositoryImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

func (r *AnalyticsRepositoryImpl) Create(event *models.AnalyticsEvent) error {
	return r.db.Create(event).Error
}

func (r *AnalyticsRepositoryImpl) CountByEventType(userID uuid.UUID, since time.Time) ([]EventCount, error) {
	var counts []EventCount
	err := r.db.Model(&models.AnalyticsEvent{}).
		Select("event_type, COUNT(id) AS count").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Group("event_type").
		Scan(&counts).Error
	return counts, err
}

func (r *AnalyticsRepositoryImpl) CountForRelated(relatedType models.RelatedType, relatedID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.AnalyticsEvent{}).
		Where("related_type = ? AND related_id = ? AND created_at >= ?", relatedType, relatedID, since).
		Count(&count).Error
	return count, err
}

func (r *AnalyticsRepositoryImpl) DeleteBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&models.AnalyticsEvent{})
	return result.RowsAffected, result.Error
}
