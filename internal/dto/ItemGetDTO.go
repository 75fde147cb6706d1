package dto

import (
	"time"

	"github.com/google/uuid"
)

type ItemGetDTO struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Quantity     int          `json:"quantity"`
	Condition    string       `json:"condition"`
	LocationID   *uuid.UUID   `json:"location_id,omitempty"`
	LocationName string       `json:"location_name,omitempty"`
	CategoryID   *uuid.UUID   `json:"category_id,omitempty"`
	Tags         []TagGetDTO  `json:"tags,omitempty"`
	OwnerID      *uuid.UUID   `json:"owner_id,omitempty"`
	UserRole     string       `json:"user_role,omitempty"`
	Logs         []ItemLogDTO `json:"logs,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type TagGetDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

type ItemLogDTO struct {
	ID        uuid.UUID  `json:"id"`
	Action    string     `json:"action"`
	Details   string     `json:"details,omitempty"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
