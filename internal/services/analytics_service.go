package services

import (
	"Stash/internal/models"
	"Stash/internal/repository"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AnalyticsService records usage events. Tracking is best effort: failures
// are logged and never surfaced to the request that triggered them.
type AnalyticsService interface {
	Track(user *models.User, eventType models.EventType, relatedType *models.RelatedType, relatedID *uuid.UUID, metadata map[string]any)
	EventCounts(user *models.User, since time.Time) ([]repository.EventCount, error)
	ViewCount(relatedType models.RelatedType, relatedID uuid.UUID, since time.Time) (int64, error)
}

type analyticsServiceImpl struct {
	analyticsRepo repository.AnalyticsRepository
	logService    LogService
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, logService LogService) AnalyticsService {
	return &analyticsServiceImpl{analyticsRepo: analyticsRepo, logService: logService}
}

func (s *analyticsServiceImpl) Track(user *models.User, eventType models.EventType, relatedType *models.RelatedType, relatedID *uuid.UUID, metadata map[string]any) {
	event := &models.AnalyticsEvent{
		EventType:   eventType,
		RelatedType: relatedType,
		RelatedID:   relatedID,
	}
	if user.IsAuthenticated() {
		event.UserID = &user.ID
	}
	if metadata != nil {
		if raw, err := json.Marshal(metadata); err == nil {
			event.Metadata = raw
		}
	}
	if err := s.analyticsRepo.Create(event); err != nil {
		s.logService.Log.WithError(err).Warn("analytics event dropped")
	}
}

func (s *analyticsServiceImpl) EventCounts(user *models.User, since time.Time) ([]repository.EventCount, error) {
	return s.analyticsRepo.CountByEventType(user.ID, since)
}

func (s *analyticsServiceImpl) ViewCount(relatedType models.RelatedType, relatedID uuid.UUID, since time.Time) (int64, error) {
	return s.analyticsRepo.CountForRelated(relatedType, relatedID, since)
}
