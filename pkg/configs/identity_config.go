// pkg/configs/identity_config.go
package configs

import (
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/tszwong/notizen-api/domain/port"
	"github.com/tszwong/notizen-api/infrastructure/identity"
)

// SetupIdentityProvider creates the token verifier from environment settings
func SetupIdentityProvider(cache *redis.Client) (port.IdentityProvider, error) {
	return identity.NewProvider(identity.Config{
		UserInfoURL: os.Getenv("IDENTITY_USERINFO_URL"),
		RevokeURL:   os.Getenv("IDENTITY_REVOKE_URL"),
	}, cache)
}
