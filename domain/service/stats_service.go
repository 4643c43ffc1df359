// domain/service/stats_service.go
package service

import (
	"github.com/google/uuid"
)

// StatsService - sparse monotonic counters keyed by dotted paths. Increments
// are fire-and-forget from the caller's perspective; failures are logged,
// never surfaced.
type StatsService interface {
	Increment(userID uuid.UUID, path string, amount int64)
	GetUserStats(userID uuid.UUID) (map[string]int64, error)
}
