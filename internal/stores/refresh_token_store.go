package stores

import (
	"errors"
	"time"

	"member-auth/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInvalidRefresh = errors.New("invalid refresh token")

type RefreshTokenStore interface {
	// Save persists a freshly issued token. Every issuance is a new row;
	// existing tokens are never overwritten.
	Save(rt *models.RefreshToken) error
	// Redeem consumes the token matching (tokenHash, email) if it has not
	// expired, and returns the owning member. Absent, mismatched and expired
	// all collapse to ErrInvalidRefresh.
	Redeem(email, tokenHash string) (*models.Member, error)
	// Revoke deletes the token matching tokenHash, if any.
	Revoke(tokenHash string) error
}

// GormRefreshTokenStore implements RefreshTokenStore using GORM.
type GormRefreshTokenStore struct{ DB *gorm.DB }

func (s *GormRefreshTokenStore) Save(rt *models.RefreshToken) error {
	rt.MemberEmail = NormalizeEmail(rt.MemberEmail)
	return s.DB.Create(rt).Error
}

func (s *GormRefreshTokenStore) Redeem(email, tokenHash string) (*models.Member, error) {
	// Single conditional DELETE so two racing redemptions of the same token
	// can never both succeed. RETURNING tells us the owner of the row we won.
	var rt models.RefreshToken
	res := s.DB.Clauses(clause.Returning{}).
		Where("token_hash = ? AND member_email = ? AND expires_at > ?",
			tokenHash, NormalizeEmail(email), time.Now()).
		Delete(&rt)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidRefresh
	}

	var m models.Member
	if err := s.DB.First(&m, rt.MemberID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormRefreshTokenStore) Revoke(tokenHash string) error {
	return s.DB.Where("token_hash = ?", tokenHash).
		Delete(&models.RefreshToken{}).Error
}
