package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

const facebookGraphURL = "https://graph.facebook.com/v16.0"

// Facebook resolves access tokens against the Graph API /me endpoint.
type Facebook struct {
	BaseURL string
	Client  *http.Client
}

func NewFacebook() *Facebook {
	return &Facebook{BaseURL: facebookGraphURL, Client: newHTTPClient()}
}

func (f *Facebook) Name() string { return "facebook" }

func (f *Facebook) UserInfo(ctx context.Context, accessToken string) (*Profile, error) {
	endpoint := f.BaseURL + "/me?fields=id,name,email,picture&access_token=" +
		url.QueryEscape(accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{Service: f.Name(), StatusCode: resp.StatusCode}
	}

	var body struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture struct {
			Data struct {
				URL string `json:"url"`
			} `json:"data"`
		} `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return &Profile{
		Service: f.Name(),
		ID:      body.ID,
		Name:    body.Name,
		Email:   body.Email,
		Picture: body.Picture.Data.URL,
	}, nil
}
