// domain/port/identity_port.go
package port

import "context"

// Identity - the profile the managed identity provider vouches for.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

// IdentityProvider verifies bearer tokens against the managed identity
// provider. Authentication itself is delegated; this service only consumes
// the provider's verification surface.
type IdentityProvider interface {
	Verify(ctx context.Context, token string) (*Identity, error)
	SignOut(ctx context.Context, token string) error
}
