package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	handlers "member-auth/internal/handlers/auth"
	"member-auth/internal/mocks"
	"member-auth/internal/models"
	"member-auth/internal/stores"
	"member-auth/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRefreshToken(t *testing.T) {
	w, ctx := postJSON(t, "/v1/auth/refresh-token",
		`{"email":"sousa.dfs@gmail.com","refreshToken":"old-raw"}`)

	m := &models.Member{ID: 7, Email: "sousa.dfs@gmail.com", Role: models.RoleUser}

	tokens := new(mocks.TokenService)
	tokens.On("HashRefreshToken", "old-raw").Return("old-hash")
	tokens.On("GenerateAccessToken", uint(7), models.RoleUser, 15*time.Minute).
		Return("new-access", nil)
	tokens.On("GenerateRefreshToken", token.RefreshTokenLength).
		Return("new-raw", "new-hash", nil)

	refreshStore := new(mocks.RefreshTokenStore)
	refreshStore.On("Redeem", "sousa.dfs@gmail.com", "old-hash").Return(m, nil)
	refreshStore.On("Save", mock.MatchedBy(func(rt *models.RefreshToken) bool {
		return rt.TokenHash == "new-hash" && rt.MemberID == 7 &&
			rt.MemberEmail == "sousa.dfs@gmail.com" && rt.ExpiresAt.After(time.Now())
	})).Return(nil)

	h := handlers.NewAuthHandler(nil, refreshStore, nil, tokens,
		newIssuer(tokens, refreshStore), nil)

	h.RefreshToken(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	// flat payload, no nesting
	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "new-access", resp["accessToken"])
	assert.Equal(t, "new-raw", resp["refreshToken"])
	assert.EqualValues(t, 900, resp["expiresIn"])
	assert.NotContains(t, resp, "token")
	assert.NotContains(t, resp, "member")

	refreshStore.AssertExpectations(t)
}

// A refresh token buys exactly one new pair; the second redemption is a 401.
func TestRefreshTokenSingleUse(t *testing.T) {
	m := &models.Member{ID: 7, Email: "sousa.dfs@gmail.com", Role: models.RoleUser}

	tokens := new(mocks.TokenService)
	tokens.On("HashRefreshToken", "old-raw").Return("old-hash")
	tokens.On("GenerateAccessToken", mock.Anything, mock.Anything, mock.Anything).
		Return("new-access", nil)
	tokens.On("GenerateRefreshToken", mock.Anything).Return("new-raw", "new-hash", nil)

	refreshStore := new(mocks.RefreshTokenStore)
	refreshStore.On("Redeem", "sousa.dfs@gmail.com", "old-hash").Return(m, nil).Once()
	refreshStore.On("Redeem", "sousa.dfs@gmail.com", "old-hash").
		Return(nil, stores.ErrInvalidRefresh)
	refreshStore.On("Save", mock.Anything).Return(nil)

	h := handlers.NewAuthHandler(nil, refreshStore, nil, tokens,
		newIssuer(tokens, refreshStore), nil)

	body := `{"email":"sousa.dfs@gmail.com","refreshToken":"old-raw"}`

	wFirst, ctxFirst := postJSON(t, "/v1/auth/refresh-token", body)
	h.RefreshToken(ctxFirst)
	assert.Equal(t, http.StatusOK, wFirst.Code)

	wSecond, ctxSecond := postJSON(t, "/v1/auth/refresh-token", body)
	h.RefreshToken(ctxSecond)
	assert.Equal(t, http.StatusUnauthorized, wSecond.Code)
	assert.Contains(t, wSecond.Body.String(), "Incorrect email or refreshToken")
}

func TestRefreshTokenUnauthorized(t *testing.T) {
	w, ctx := postJSON(t, "/v1/auth/refresh-token",
		`{"email":"sousa.dfs@gmail.com","refreshToken":"bogus"}`)

	tokens := new(mocks.TokenService)
	tokens.On("HashRefreshToken", "bogus").Return("bogus-hash")

	refreshStore := new(mocks.RefreshTokenStore)
	refreshStore.On("Redeem", "sousa.dfs@gmail.com", "bogus-hash").
		Return(nil, stores.ErrInvalidRefresh)

	h := handlers.NewAuthHandler(nil, refreshStore, nil, tokens, nil, nil)
	h.RefreshToken(ctx)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 401, resp.Code)
	assert.Equal(t, "Incorrect email or refreshToken", resp.Message)
}

func TestRefreshTokenMissingFields(t *testing.T) {
	w, ctx := postJSON(t, "/v1/auth/refresh-token", `{}`)

	h := handlers.NewAuthHandler(nil, nil, nil, nil, nil, nil)
	h.RefreshToken(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []struct {
			Field    string   `json:"field"`
			Location string   `json:"location"`
			Messages []string `json:"messages"`
		} `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 2)

	byField := map[string][]string{}
	for _, e := range resp.Errors {
		assert.Equal(t, "body", e.Location)
		byField[e.Field] = e.Messages
	}
	assert.Contains(t, byField["email"][0], `"email" is required`)
	assert.Contains(t, byField["refreshToken"][0], `"refreshToken" is required`)
}

func TestLogout(t *testing.T) {
	w, ctx := postJSON(t, "/v1/auth/logout", `{"refreshToken":"old-raw"}`)

	tokens := new(mocks.TokenService)
	tokens.On("HashRefreshToken", "old-raw").Return("old-hash")

	refreshStore := new(mocks.RefreshTokenStore)
	refreshStore.On("Revoke", "old-hash").Return(nil)

	h := handlers.NewAuthHandler(nil, refreshStore, nil, tokens, nil, nil)
	h.Logout(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	refreshStore.AssertExpectations(t)
}
