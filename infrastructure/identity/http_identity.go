// infrastructure/identity/http_identity.go
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/tszwong/notizen-api/domain/port"
)

// cacheTTL - verified identities are cached briefly so a burst of requests
// does not hammer the provider.
const cacheTTL = 60 * time.Second

// Config - identity provider endpoints, from the environment.
type Config struct {
	UserInfoURL string // GET with bearer token -> profile JSON
	RevokeURL   string // POST with bearer token, optional
}

type httpIdentityProvider struct {
	cfg    Config
	client *http.Client
	cache  *redis.Client
}

// NewProvider creates an IdentityProvider that verifies bearer tokens
// against the managed provider's userinfo endpoint.
func NewProvider(cfg Config, cache *redis.Client) (port.IdentityProvider, error) {
	if cfg.UserInfoURL == "" {
		return nil, errors.New("IDENTITY_USERINFO_URL is not set")
	}

	return &httpIdentityProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		cache:  cache,
	}, nil
}

// Verify resolves a bearer token to an identity, consulting the cache
// first.
func (p *httpIdentityProvider) Verify(ctx context.Context, token string) (*port.Identity, error) {
	if token == "" {
		return nil, errors.New("missing token")
	}

	cacheKey := "identity:" + token
	if p.cache != nil {
		if cached, err := p.cache.Get(ctx, cacheKey).Result(); err == nil {
			var identity port.Identity
			if json.Unmarshal([]byte(cached), &identity) == nil {
				return &identity, nil
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling identity provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, errors.New("invalid or expired token")
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("identity provider error (%d): %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding identity response: %w", err)
	}
	if payload.Sub == "" {
		return nil, errors.New("identity provider returned no subject")
	}

	identity := &port.Identity{
		ID:          payload.Sub,
		Email:       payload.Email,
		DisplayName: payload.Name,
		PhotoURL:    payload.Picture,
	}

	if p.cache != nil {
		if blob, err := json.Marshal(identity); err == nil {
			p.cache.Set(ctx, cacheKey, blob, cacheTTL)
		}
	}

	return identity, nil
}

// SignOut revokes the token with the provider and drops it from the cache.
func (p *httpIdentityProvider) SignOut(ctx context.Context, token string) error {
	if p.cache != nil {
		p.cache.Del(ctx, "identity:"+token)
	}
	if p.cfg.RevokeURL == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.RevokeURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("identity provider revoke failed (%d)", resp.StatusCode)
	}
	return nil
}
