package mocks

import (
	"time"

	"member-auth/internal/token"

	"github.com/stretchr/testify/mock"
)

type TokenService struct{ mock.Mock }

func (m *TokenService) GenerateAccessToken(memberID uint, role string, ttl time.Duration) (string, error) {
	args := m.Called(memberID, role, ttl)
	return args.String(0), args.Error(1)
}

func (m *TokenService) ParseAccessToken(tokenString string) (*token.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*token.Claims), args.Error(1)
}

func (m *TokenService) GenerateRefreshToken(length int) (string, string, error) {
	args := m.Called(length)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *TokenService) HashRefreshToken(raw string) string {
	return m.Called(raw).String(0)
}
