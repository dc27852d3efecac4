package models

import (
	"time"
)

// RefreshToken is one issued refresh token. The raw token never touches the
// database; only its sha256 hash is kept. Rows are hard-deleted on
// redemption, so no soft-delete column here.
type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"`
	TokenHash string `gorm:"uniqueIndex;not null"`
	MemberID  uint   `gorm:"not null"`
	Member    Member `gorm:"foreignKey:MemberID"`

	// MemberEmail is denormalized so redemption can match (token, email)
	// in a single statement.
	MemberEmail string `gorm:"index;not null"`

	ExpiresAt time.Time
	CreatedAt time.Time
}
