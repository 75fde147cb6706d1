package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type EventType string

const (
	EventViewItem     EventType = "view_item"
	EventViewLocation EventType = "view_location"
	EventSearch       EventType = "search"
	EventAPIRequest   EventType = "api_request"
)

type AnalyticsEvent struct {
	BaseModel
	UserID      *uuid.UUID      `gorm:"type:uuid;index" json:"user_id,omitempty"`
	User        *User           `gorm:"foreignKey:UserID" json:"-"`
	EventType   EventType       `gorm:"type:varchar(50);not null;index" json:"event_type"`
	RelatedType *RelatedType    `gorm:"type:varchar(50);index:idx_analytics_related" json:"related_type,omitempty"`
	RelatedID   *uuid.UUID      `gorm:"type:uuid;index:idx_analytics_related" json:"related_id,omitempty"`
	Metadata    json.RawMessage `gorm:"type:text" json:"metadata,omitempty"`
}
