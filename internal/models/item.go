package models

import (
	"time"

	"github.com/google/uuid"
)

type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionDamaged   Condition = "damaged"
	ConditionPoor      Condition = "poor"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionDamaged, ConditionPoor:
		return true
	}
	return false
}

// Quantity bounds enforced by the item service on every write.
const (
	MinQuantity = 1
	MaxQuantity = 10000
)

type Item struct {
	BaseModel
	Name        string      `gorm:"type:varchar(255);not null;index" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Quantity    int         `gorm:"default:1" json:"quantity"`
	Condition   Condition   `gorm:"type:varchar(50);default:'good';index" json:"condition"`
	LocationID  *uuid.UUID  `gorm:"type:uuid;index" json:"location_id,omitempty"`
	Location    *Location   `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL" json:"-"`
	CategoryID  *uuid.UUID  `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category    *Category   `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
	Tags        []Tag       `gorm:"many2many:item_tags" json:"tags,omitempty"`
	OwnerID     *uuid.UUID  `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Owner       *User       `gorm:"foreignKey:OwnerID" json:"-"`
	Shares      []ItemShare `gorm:"foreignKey:ItemID" json:"-"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime;index" json:"updated_at"`
}
