package models

import (
	"time"

	"gorm.io/datatypes"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name             string                      `gorm:"size:150;not null" json:"name"`
	ShortDescription string                      `gorm:"size:255" json:"short_description"`
	Description      string                      `gorm:"type:text" json:"description"`
	PriceRange       string                      `gorm:"size:100" json:"price_range"`
	Features         datatypes.JSONSlice[string] `json:"features"`
	ImageURL         string                      `gorm:"size:500" json:"image_url"`
	IconName         string                      `gorm:"size:50" json:"icon_name"`

	OrderPosition int  `gorm:"not null;default:0;index" json:"order_position"`
	IsActive      bool `gorm:"not null" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
