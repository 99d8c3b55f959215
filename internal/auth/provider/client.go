package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"travel-service/internal/account"
	"travel-service/internal/auth"
)

// Client fetches raw user-info payloads from the providers' endpoints. The
// call is the only outbound network dependency of a login flow, so it
// carries a bounded timeout and fails with ErrProviderUnavailable instead
// of hanging the request worker.
type Client struct {
	base         *http.Client
	timeout      time.Duration
	urlOverrides map[account.Provider]string
}

// Option configures a Client.
type Option func(*Client)

// WithUserInfoURL overrides a provider's user-info endpoint. Tests point
// providers at local fakes with this.
func WithUserInfoURL(p account.Provider, url string) Option {
	return func(c *Client) {
		c.urlOverrides[p] = url
	}
}

func NewClient(timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		base:         &http.Client{Timeout: timeout},
		timeout:      timeout,
		urlOverrides: make(map[account.Provider]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchIdentity calls the named provider's user-info endpoint with the
// given access token as bearer credential and returns the normalized
// identity.
func (c *Client) FetchIdentity(ctx context.Context, providerName, accessToken string) (auth.Identity, error) {
	adapter, err := ForName(providerName)
	if err != nil {
		return auth.Identity{}, err
	}

	url := adapter.UserInfoURL()
	if override, ok := c.urlOverrides[adapter.Name()]; ok {
		url = override
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// oauth2's transport attaches the bearer header and reuses c.base
	// underneath.
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	httpClient := oauth2.NewClient(
		context.WithValue(ctx, oauth2.HTTPClient, c.base),
		src,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("build user-info request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("%w: %s: %v", auth.ErrProviderUnavailable, adapter.Name(), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		// the provider rejected the access token itself
		return auth.Identity{}, fmt.Errorf("%w: provider rejected access token", auth.ErrInvalidCredentials)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return auth.Identity{}, fmt.Errorf("%w: %s returned status %d", auth.ErrProviderUnavailable, adapter.Name(), resp.StatusCode)
	}

	var attrs map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&attrs); err != nil {
		return auth.Identity{}, fmt.Errorf("%w: decode %s user-info: %v", auth.ErrProviderUnavailable, adapter.Name(), err)
	}

	return adapter.Identity(attrs), nil
}
