package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ProjectPlanning   = "planning"
	ProjectInProgress = "in_progress"
	ProjectCompleted  = "completed"
	ProjectOnHold     = "on_hold"
)

type Project struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name             string     `gorm:"size:150;not null" json:"name"`
	ShortDescription string     `gorm:"size:255" json:"short_description"`
	Description      string     `gorm:"type:text" json:"description"`
	Location         string     `gorm:"size:255" json:"location"`
	ProjectType      string     `gorm:"size:50;index" json:"project_type"`
	BudgetRange      string     `gorm:"size:100" json:"budget_range"`
	ProjectValue     string     `gorm:"size:100" json:"project_value"`
	CompletionDate   *time.Time `json:"completion_date"`
	ClientName       string     `gorm:"size:150" json:"client_name"`

	ImageURLs datatypes.JSONSlice[string] `json:"image_urls"`
	Features  datatypes.JSONSlice[string] `json:"features"`

	Status        string `gorm:"size:20;not null;default:'planning'" json:"status"`
	OrderPosition int    `gorm:"not null;default:0;index" json:"order_position"`
	IsFeatured    bool   `gorm:"not null" json:"is_featured"`
	IsActive      bool   `gorm:"not null" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
