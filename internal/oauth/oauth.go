package oauth

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Profile is a normalized identity as reported by an external provider.
// Providers return identity facts only; account lookup and creation happen
// in the auth handlers.
type Profile struct {
	Service string
	ID      string
	Name    string
	Email   string
	Picture string
}

// Provider verifies a client-supplied access token against its service and
// returns the profile it belongs to.
type Provider interface {
	Name() string
	UserInfo(ctx context.Context, accessToken string) (*Profile, error)
}

// ProviderError is an upstream failure. It is surfaced to the client as a
// gateway error, never disguised as invalid credentials.
type ProviderError struct {
	Service    string
	StatusCode int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: userinfo request failed with status %d", e.Service, e.StatusCode)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}
