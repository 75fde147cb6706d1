package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationItemCreated    NotificationType = "item_created"
	NotificationItemUpdated    NotificationType = "item_updated"
	NotificationItemMoved      NotificationType = "item_moved"
	NotificationItemDeleted    NotificationType = "item_deleted"
	NotificationLocationShared NotificationType = "location_shared"
	NotificationItemShared     NotificationType = "item_shared"
	NotificationShareRevoked   NotificationType = "share_revoked"
)

// RelatedType names the kind of entity a notification or analytics event
// points at.
type RelatedType string

const (
	RelatedLocation RelatedType = "location"
	RelatedItem     RelatedType = "item"
)

type Notification struct {
	BaseModel
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index:idx_notification_user_read" json:"user_id"`
	User        *User            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Type        NotificationType `gorm:"type:varchar(50);not null;index" json:"type"`
	Message     string           `gorm:"type:text;not null" json:"message"`
	Read        bool             `gorm:"default:false;index:idx_notification_user_read" json:"read"`
	RelatedType *RelatedType     `gorm:"type:varchar(50)" json:"related_type,omitempty"`
	RelatedID   *uuid.UUID       `gorm:"type:uuid" json:"related_id,omitempty"`
	Metadata    json.RawMessage  `gorm:"type:text" json:"metadata,omitempty"`
}
