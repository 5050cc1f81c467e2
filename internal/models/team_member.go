package models

import (
	"time"

	"gorm.io/datatypes"
)

type TeamMember struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name            string                      `gorm:"size:150;not null" json:"name"`
	Position        string                      `gorm:"size:150;not null" json:"position"`
	Bio             string                      `gorm:"type:text" json:"bio"`
	ImageURL        string                      `gorm:"size:500" json:"image_url"`
	Email           string                      `gorm:"size:150" json:"email"`
	Phone           string                      `gorm:"size:30" json:"phone"`
	Specialties     datatypes.JSONSlice[string] `json:"specialties"`
	YearsExperience *int                        `json:"years_experience"`

	OrderPosition int  `gorm:"not null;default:0;index" json:"order_position"`
	IsActive      bool `gorm:"not null" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
