package models

import (
	"time"

	"gorm.io/datatypes"
)

// CompanyInfoID is the only id the company_info table accepts.
const CompanyInfoID = 1

// CompanyInfo is a singleton row pinned to CompanyInfoID.
type CompanyInfo struct {
	ID uint `gorm:"primaryKey;autoIncrement:false;check:company_info_singleton,id = 1" json:"id"`

	Name        string `gorm:"size:150;not null" json:"name"`
	Tagline     string `gorm:"size:255" json:"tagline"`
	Description string `gorm:"type:text" json:"description"`
	Mission     string `gorm:"type:text" json:"mission"`
	Vision      string `gorm:"type:text" json:"vision"`
	Values      string `gorm:"type:text" json:"values"`

	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:30" json:"phone"`
	Email   string `gorm:"size:150" json:"email"`
	Website string `gorm:"size:255" json:"website"`

	SocialMedia datatypes.JSONMap `json:"social_media"`
	// BusinessHours maps a lowercase weekday to "HH:MM-HH:MM" or "closed".
	BusinessHours datatypes.JSONMap `json:"business_hours"`

	LogoURL       string `gorm:"size:500" json:"logo_url"`
	HeroImageURL  string `gorm:"size:500" json:"hero_image_url"`
	AboutImageURL string `gorm:"size:500" json:"about_image_url"`
	FoundedYear   *int   `json:"founded_year"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CompanyInfo) TableName() string {
	return "company_info"
}
