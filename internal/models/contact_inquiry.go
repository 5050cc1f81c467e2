package models

import "time"

const (
	InquiryNew        = "new"
	InquiryInProgress = "in_progress"
	InquiryResolved   = "resolved"
	InquiryArchived   = "archived"
)

type ContactInquiry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Email     string `gorm:"size:150;not null;index" json:"email"`
	Phone     string `gorm:"size:30" json:"phone"`
	Service   string `gorm:"size:150" json:"service"`
	Budget    string `gorm:"size:100" json:"budget"`
	Timeline  string `gorm:"size:100" json:"timeline"`
	Message   string `gorm:"type:text;not null" json:"message"`

	Status      string     `gorm:"size:20;not null;default:'new';index" json:"status"`
	AdminNotes  string     `gorm:"type:text" json:"admin_notes"`
	RespondedAt *time.Time `json:"responded_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i ContactInquiry) FullName() string {
	return i.FirstName + " " + i.LastName
}
