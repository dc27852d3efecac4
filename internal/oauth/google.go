package oauth

import (
	"context"
	"encoding/json"
	"net/http"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3"

// Google resolves access tokens against the OpenID userinfo endpoint.
type Google struct {
	BaseURL string
	Client  *http.Client
}

func NewGoogle() *Google {
	return &Google{BaseURL: googleUserInfoURL, Client: newHTTPClient()}
}

func (g *Google) Name() string { return "google" }

func (g *Google) UserInfo(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"/userinfo", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{Service: g.Name(), StatusCode: resp.StatusCode}
	}

	var body struct {
		Sub     string `json:"sub"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return &Profile{
		Service: g.Name(),
		ID:      body.Sub,
		Name:    body.Name,
		Email:   body.Email,
		Picture: body.Picture,
	}, nil
}
