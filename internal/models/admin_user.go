package models

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

type AdminUser struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string     `gorm:"size:100;not null" json:"name"`
	Email        string     `gorm:"size:150;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Role         string     `gorm:"size:20;not null;default:'editor'" json:"role"`
	LastLoginAt  *time.Time `json:"last_login_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
