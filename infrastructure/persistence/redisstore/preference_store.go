// infrastructure/persistence/redisstore/preference_store.go
package redisstore

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/tszwong/notizen-api/domain/port"
)

type preferenceStore struct {
	client *redis.Client
	prefix string
}

// NewPreferenceStore creates a Redis-backed key→string store for per-user
// UI state such as the last open note id.
func NewPreferenceStore(client *redis.Client) port.PreferenceStore {
	return &preferenceStore{
		client: client,
		prefix: "pref:",
	}
}

// Get reads a preference; unset keys come back as "".
func (s *preferenceStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set writes a preference. Preferences have no expiry.
func (s *preferenceStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// Delete clears a preference.
func (s *preferenceStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
