package models

import (
	"github.com/google/uuid"
)

type LogAction string

const (
	ActionCreated LogAction = "created"
	ActionUpdated LogAction = "updated"
	ActionMoved   LogAction = "moved"
	ActionDeleted LogAction = "deleted"
)

// ItemLog is an activity entry written by the item service on each mutation.
// ItemID carries no foreign key: the deleted entry must survive the item row
// it describes.
type ItemLog struct {
	BaseModel
	ItemID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"item_id"`
	Action  LogAction  `gorm:"type:varchar(50);not null;index" json:"action"`
	Details string     `gorm:"type:text" json:"details"`
	UserID  *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	User    *User      `gorm:"foreignKey:UserID" json:"-"`
}
