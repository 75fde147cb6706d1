package models

type User struct {
	BaseModel
	Username    string `gorm:"type:varchar(150);not null;unique" json:"username"`
	IsSuperuser bool   `gorm:"default:false" json:"is_superuser"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

// IsAuthenticated reports whether the user is a real, loaded account.
// A nil user stands for an anonymous request.
func (u *User) IsAuthenticated() bool {
	return u != nil
}
