package mocks

import (
	"context"

	"member-auth/internal/oauth"

	"github.com/stretchr/testify/mock"
)

type Provider struct {
	mock.Mock
	Service string
}

func (m *Provider) Name() string { return m.Service }

func (m *Provider) UserInfo(ctx context.Context, accessToken string) (*oauth.Profile, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth.Profile), args.Error(1)
}
