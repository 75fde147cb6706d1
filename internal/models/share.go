package models

import (
	"github.com/google/uuid"
)

// Role is the effective permission level of a user on a resource.
type Role string

const (
	RoleNone   Role = ""
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleOwner  Role = "owner"
)

func (r Role) Valid() bool {
	switch r {
	case RoleViewer, RoleEditor, RoleOwner:
		return true
	}
	return false
}

// CanView reports whether the role grants read access.
func (r Role) CanView() bool {
	return r != RoleNone
}

// CanEdit reports whether the role grants write access.
func (r Role) CanEdit() bool {
	return r == RoleOwner || r == RoleEditor
}

// LocationShare grants a user a role on a location, independent of the
// location's owner. The (location, user) pair is unique.
type LocationShare struct {
	BaseModel
	LocationID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_location_share_pair" json:"location_id"`
	Location    *Location  `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"-"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_location_share_pair;index" json:"user_id"`
	User        *User      `gorm:"foreignKey:UserID" json:"-"`
	Role        Role       `gorm:"type:varchar(20);default:'viewer'" json:"role"`
	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"created_by_id,omitempty"`
	CreatedBy   *User      `gorm:"foreignKey:CreatedByID" json:"-"`
}

// ItemShare grants a user a role on an item. The (item, user) pair is unique.
type ItemShare struct {
	BaseModel
	ItemID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_item_share_pair" json:"item_id"`
	Item        *Item      `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_item_share_pair;index" json:"user_id"`
	User        *User      `gorm:"foreignKey:UserID" json:"-"`
	Role        Role       `gorm:"type:varchar(20);default:'viewer'" json:"role"`
	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"created_by_id,omitempty"`
	CreatedBy   *User      `gorm:"foreignKey:CreatedByID" json:"-"`
}
