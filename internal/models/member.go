package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Member represents the members table in database.
type Member struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Email is stored lowercased; uniqueness is enforced by the index.
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	// PasswordHash is empty for OAuth-only accounts.
	PasswordHash string `json:"-"`

	Name string `gorm:"not null" json:"name"`
	Role string `gorm:"not null;default:user" json:"role"`

	// Linked OAuth identity, set on first social login.
	Service   string `json:"-"`
	ServiceID string `json:"-"`

	Picture string `json:"picture,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"` // for soft deletes
}
