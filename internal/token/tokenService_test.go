package token_test

import (
	"testing"
	"time"

	"member-auth/internal/token"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := &token.JWTService{Secret: []byte("test-secret")}

	signed, err := svc.GenerateAccessToken(7, "user", 15*time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := svc.ParseAccessToken(signed)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.MemberID)
	assert.Equal(t, "user", claims.Role)
	assert.NotEmpty(t, claims.ID) // jti
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestAccessTokenWrongSecret(t *testing.T) {
	svc := &token.JWTService{Secret: []byte("test-secret")}
	other := &token.JWTService{Secret: []byte("other-secret")}

	signed, err := svc.GenerateAccessToken(7, "user", 15*time.Minute)
	assert.NoError(t, err)

	_, err = other.ParseAccessToken(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestAccessTokenExpired(t *testing.T) {
	svc := &token.JWTService{Secret: []byte("test-secret")}

	signed, err := svc.GenerateAccessToken(7, "user", -time.Minute)
	assert.NoError(t, err)

	_, err = svc.ParseAccessToken(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := &token.JWTService{Secret: []byte("test-secret")}

	raw, hash, err := svc.GenerateRefreshToken(token.RefreshTokenLength)
	assert.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.NotEqual(t, raw, hash)
	assert.Equal(t, svc.HashRefreshToken(raw), hash)
	assert.Len(t, hash, 64) // sha256 hex

	raw2, hash2, err := svc.GenerateRefreshToken(token.RefreshTokenLength)
	assert.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
	assert.NotEqual(t, hash, hash2)
}
