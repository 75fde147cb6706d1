package dto

import (
	"time"

	"github.com/google/uuid"
)

type ShareGetDTO struct {
	ID         uuid.UUID  `json:"id"`
	ResourceID uuid.UUID  `json:"resource_id"`
	UserID     uuid.UUID  `json:"user_id"`
	Username   string     `json:"username,omitempty"`
	Role       string     `json:"role"`
	CreatedBy  *uuid.UUID `json:"created_by_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
