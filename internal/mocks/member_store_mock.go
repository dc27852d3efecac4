package mocks

import (
	"member-auth/internal/models"

	"github.com/stretchr/testify/mock"
)

type MemberStore struct{ mock.Mock }

func (m *MemberStore) FindByEmail(email string) (*models.Member, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MemberStore) CreateMember(mem *models.Member) error { return m.Called(mem).Error(0) }

func (m *MemberStore) GetByID(id uint) (*models.Member, error) {
	a := m.Called(id)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.Member), a.Error(1)
}
