package models

import (
	"github.com/google/uuid"
)

type RoomType string

const (
	RoomLivingRoom    RoomType = "living_room"
	RoomKitchen       RoomType = "kitchen"
	RoomChildrenRoomA RoomType = "children_room_a"
	RoomChildrenRoomN RoomType = "children_room_n"
	RoomOffice        RoomType = "office"
	RoomAttic         RoomType = "attic"
)

func (r RoomType) Valid() bool {
	switch r {
	case RoomLivingRoom, RoomKitchen, RoomChildrenRoomA, RoomChildrenRoomN, RoomOffice, RoomAttic:
		return true
	}
	return false
}

type Location struct {
	BaseModel
	Name     string          `gorm:"type:varchar(255);not null;index" json:"name"`
	RoomType *RoomType       `gorm:"type:varchar(50);index" json:"room_type,omitempty"`
	ParentID *uuid.UUID      `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Parent   *Location       `gorm:"foreignKey:ParentID" json:"-"`
	Children []Location      `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	IsBox    bool            `gorm:"default:false;index" json:"is_box"`
	OwnerID  *uuid.UUID      `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Owner    *User           `gorm:"foreignKey:OwnerID" json:"-"`
	Items    []Item          `gorm:"foreignKey:LocationID" json:"items,omitempty"`
	Shares   []LocationShare `gorm:"foreignKey:LocationID" json:"-"`
}
