// application/serviceimpl/stats_service.go
package serviceimpl

import (
	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/repository"
	"github.com/tszwong/notizen-api/domain/service"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService creates a new instance of StatsService.
func NewStatsService(statsRepo repository.StatsRepository) service.StatsService {
	return &statsService{statsRepo: statsRepo}
}

// Increment atomically bumps the counter at the dotted path. Failures are
// logged and swallowed; counters are non-critical.
func (s *statsService) Increment(userID uuid.UUID, path string, amount int64) {
	if err := s.statsRepo.Increment(userID, path, amount); err != nil {
		logBackground("stat increment "+path, err)
	}
}

// GetUserStats returns all counters as a path -> value map.
func (s *statsService) GetUserStats(userID uuid.UUID) (map[string]int64, error) {
	stats, err := s.statsRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(stats))
	for _, stat := range stats {
		out[stat.Path] = stat.Value
	}
	return out, nil
}
