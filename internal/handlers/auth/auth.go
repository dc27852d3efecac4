package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"member-auth/internal/member"
	"member-auth/internal/models"
	"member-auth/internal/oauth"
	"member-auth/internal/stores"
	"member-auth/internal/token"
)

type RegisterRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Name     string `json:"name"     binding:"required,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,max=128"`
}

type OAuthRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

type RefreshRequest struct {
	Email        string `json:"email"        binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

const (
	msgBadCredentials = "Incorrect email or password"
	msgBadRefresh     = "Incorrect email or refreshToken"
)

type AuthHandler struct {
	Members      stores.MemberStore
	RefreshStore stores.RefreshTokenStore
	Hasher       member.PasswordHasher
	Tokens       token.TokenService
	Issuer       *token.Issuer
	Providers    map[string]oauth.Provider
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(
	members stores.MemberStore,
	refreshStore stores.RefreshTokenStore,
	hasher member.PasswordHasher,
	tokens token.TokenService,
	issuer *token.Issuer,
	providers map[string]oauth.Provider,
) *AuthHandler {
	return &AuthHandler{
		Members:      members,
		RefreshStore: refreshStore,
		Hasher:       hasher,
		Tokens:       tokens,
		Issuer:       issuer,
		Providers:    providers,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.Members.FindByEmail(req.Email); err == nil {
		respondDuplicateEmail(c)
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		slog.Error("register: member lookup failed", "error", err)
		respondError(c, http.StatusInternalServerError, "server error")
		return
	}

	hashed, err := h.Hasher.Hash([]byte(req.Password))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error hashing password")
		return
	}

	m := &models.Member{
		Email:        req.Email,
		PasswordHash: string(hashed),
		Name:         req.Name,
		Role:         models.RoleUser,
	}

	if err := h.Members.CreateMember(m); err != nil {
		// lost the race to a concurrent registration
		if errors.Is(err, stores.ErrDuplicateEmail) {
			respondDuplicateEmail(c)
			return
		}
		slog.Error("register: create member failed", "error", err)
		respondError(c, http.StatusInternalServerError, "failed to create member")
		return
	}

	pair, err := h.Issuer.Issue(m)
	if err != nil {
		slog.Error("register: token issuance failed", "error", err)
		respondError(c, http.StatusInternalServerError, "could not issue tokens")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": pair, "member": m})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	// Unknown email, OAuth-only account and wrong password all produce the
	// same response, so the endpoint cannot be used to enumerate members.
	m, err := h.Members.FindByEmail(req.Email)
	if err != nil {
		respondError(c, http.StatusUnauthorized, msgBadCredentials)
		return
	}

	if m.PasswordHash == "" {
		respondError(c, http.StatusUnauthorized, msgBadCredentials)
		return
	}

	if err := h.Hasher.Compare([]byte(m.PasswordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, msgBadCredentials)
		return
	}

	pair, err := h.Issuer.Issue(m)
	if err != nil {
		slog.Error("login: token issuance failed", "error", err)
		respondError(c, http.StatusInternalServerError, "could not issue tokens")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": pair, "member": m})
}

// OAuthLogin returns the handler for one provider route. The provider call
// verifies the client-supplied access token; a local account matching the
// resolved email wins over the incoming profile.
func (h *AuthHandler) OAuthLogin(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OAuthRequest
		if !bindJSON(c, &req) {
			return
		}

		p, ok := h.Providers[service]
		if !ok {
			respondError(c, http.StatusNotFound, "unknown oauth provider")
			return
		}

		profile, err := p.UserInfo(c.Request.Context(), req.AccessToken)
		if err != nil {
			slog.Error("oauth: userinfo call failed", "service", service, "error", err)
			respondError(c, http.StatusBadGateway, err.Error())
			return
		}

		m, err := h.Members.FindByEmail(profile.Email)
		switch {
		case err == nil:
			// existing account wins; the stored profile is not overwritten

		case errors.Is(err, stores.ErrNotFound):
			m = &models.Member{
				Email:     profile.Email,
				Name:      profile.Name,
				Role:      models.RoleUser,
				Service:   profile.Service,
				ServiceID: profile.ID,
				Picture:   profile.Picture,
			}
			if err := h.Members.CreateMember(m); err != nil {
				if errors.Is(err, stores.ErrDuplicateEmail) {
					// a concurrent login created the account first
					if m, err = h.Members.FindByEmail(profile.Email); err != nil {
						respondError(c, http.StatusInternalServerError, "server error")
						return
					}
				} else {
					slog.Error("oauth: create member failed", "service", service, "error", err)
					respondError(c, http.StatusInternalServerError, "failed to create member")
					return
				}
			}

		default:
			slog.Error("oauth: member lookup failed", "service", service, "error", err)
			respondError(c, http.StatusInternalServerError, "server error")
			return
		}

		pair, err := h.Issuer.Issue(m)
		if err != nil {
			slog.Error("oauth: token issuance failed", "service", service, "error", err)
			respondError(c, http.StatusInternalServerError, "could not issue tokens")
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": pair, "member": m})
	}
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	hash := h.Tokens.HashRefreshToken(req.RefreshToken)

	m, err := h.RefreshStore.Redeem(req.Email, hash)
	if err != nil {
		if errors.Is(err, stores.ErrInvalidRefresh) {
			respondError(c, http.StatusUnauthorized, msgBadRefresh)
			return
		}
		slog.Error("refresh: redeem failed", "error", err)
		respondError(c, http.StatusInternalServerError, "server error")
		return
	}

	pair, err := h.Issuer.Issue(m)
	if err != nil {
		slog.Error("refresh: token issuance failed", "error", err)
		respondError(c, http.StatusInternalServerError, "could not issue tokens")
		return
	}

	// Flat shape here, unlike the nested login/register payload.
	c.JSON(http.StatusOK, pair)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	if !bindJSON(c, &req) {
		return
	}

	hash := h.Tokens.HashRefreshToken(req.RefreshToken)

	if err := h.RefreshStore.Revoke(hash); err != nil {
		slog.Error("logout: revoke failed", "error", err)
		respondError(c, http.StatusInternalServerError, "could not revoke refresh token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logout successful"})
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	memberIDVal, exists := c.Get("member_id")
	if !exists {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	m, err := h.Members.GetByID(memberIDVal.(uint))
	if err != nil {
		respondError(c, http.StatusNotFound, "member not found")
		return
	}

	c.JSON(http.StatusOK, m)
}
