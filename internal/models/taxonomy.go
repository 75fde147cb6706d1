package models

// Category groups items (e.g. Electronics, Furniture, Clothing).
type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null;unique" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Color       string `gorm:"type:varchar(7);default:'#667eea'" json:"color"`
	Icon        string `gorm:"type:varchar(50)" json:"icon,omitempty"`
}

// Tag is a free-form label attached to items.
type Tag struct {
	BaseModel
	Name  string `gorm:"type:varchar(50);not null;unique" json:"name"`
	Color string `gorm:"type:varchar(7);default:'#6c757d'" json:"color"`
}
