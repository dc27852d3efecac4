package stores

import (
	"strings"

	"member-auth/internal/models"

	"gorm.io/gorm"
)

// MemberStore abstracts member persistence.
type MemberStore interface {
	// FindByEmail returns a member if it exists, or ErrNotFound.
	FindByEmail(email string) (*models.Member, error)
	// CreateMember persists a new member. Returns ErrDuplicateEmail when the
	// email is already taken.
	CreateMember(m *models.Member) error
	GetByID(id uint) (*models.Member, error)
}

var (
	ErrNotFound       = gorm.ErrRecordNotFound
	ErrDuplicateEmail = gorm.ErrDuplicatedKey
)

// NormalizeEmail lowercases and trims an email so lookups and the unique
// index agree on one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GormMemberStore implements MemberStore using GORM.
type GormMemberStore struct{ DB *gorm.DB }

func (s *GormMemberStore) FindByEmail(email string) (*models.Member, error) {
	var m models.Member
	if err := s.DB.Where("email = ?", NormalizeEmail(email)).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormMemberStore) CreateMember(m *models.Member) error {
	m.Email = NormalizeEmail(m.Email)
	return s.DB.Create(m).Error
}

func (s *GormMemberStore) GetByID(id uint) (*models.Member, error) {
	var m models.Member
	if err := s.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
