package dto

import (
	"time"

	"github.com/google/uuid"
)

type LocationGetDTO struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	RoomType  string            `json:"room_type,omitempty"`
	ParentID  *uuid.UUID        `json:"parent_id,omitempty"`
	IsBox     bool              `json:"is_box"`
	OwnerID   *uuid.UUID        `json:"owner_id,omitempty"`
	UserRole  string            `json:"user_role,omitempty"`
	Children  []*LocationGetDTO `json:"children,omitempty"`
	Items     []*ItemGetDTO     `json:"items,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
