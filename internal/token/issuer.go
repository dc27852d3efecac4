package token

import (
	"time"

	"member-auth/internal/models"
	"member-auth/internal/stores"
)

const RefreshTokenLength = 40

// Pair is what every successful auth operation hands back to the client.
// The refresh token here is the raw opaque string; the store only ever
// sees its hash.
type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// Issuer mints an access/refresh token pair for a member and persists the
// refresh half. It holds no per-request state.
type Issuer struct {
	Tokens     TokenService
	Store      stores.RefreshTokenStore
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (i *Issuer) Issue(m *models.Member) (Pair, error) {
	access, err := i.Tokens.GenerateAccessToken(m.ID, m.Role, i.AccessTTL)
	if err != nil {
		return Pair{}, err
	}

	raw, hash, err := i.Tokens.GenerateRefreshToken(RefreshTokenLength)
	if err != nil {
		return Pair{}, err
	}

	rt := &models.RefreshToken{
		TokenHash:   hash,
		MemberID:    m.ID,
		MemberEmail: m.Email,
		ExpiresAt:   time.Now().Add(i.RefreshTTL),
	}
	if err := i.Store.Save(rt); err != nil {
		return Pair{}, err
	}

	return Pair{
		AccessToken:  access,
		RefreshToken: raw,
		ExpiresIn:    int64(i.AccessTTL.Seconds()),
	}, nil
}
