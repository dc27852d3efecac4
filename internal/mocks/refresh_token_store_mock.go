package mocks

import (
	"member-auth/internal/models"

	"github.com/stretchr/testify/mock"
)

type RefreshTokenStore struct{ mock.Mock }

func (m *RefreshTokenStore) Save(rt *models.RefreshToken) error {
	return m.Called(rt).Error(0)
}

func (m *RefreshTokenStore) Redeem(email, tokenHash string) (*models.Member, error) {
	args := m.Called(email, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *RefreshTokenStore) Revoke(tokenHash string) error {
	return m.Called(tokenHash).Error(0)
}
