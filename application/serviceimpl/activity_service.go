// application/serviceimpl/activity_service.go
package serviceimpl

import (
	"time"

	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/repository"
	"github.com/tszwong/notizen-api/domain/service"
)

type activityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new instance of ActivityService.
func NewActivityService(activityRepo repository.ActivityRepository) service.ActivityService {
	return &activityService{activityRepo: activityRepo}
}

// RecordToday marks the user active for today's date. Append-only and
// idempotent; a failure is logged, never surfaced.
func (s *activityService) RecordToday(userID uuid.UUID) {
	date := time.Now().Format(models.ActivityDateLayout)
	if err := s.activityRepo.MarkActive(userID, date); err != nil {
		logBackground("activity record", err)
	}
}

// GetHeatmap returns the active-date map for the range.
func (s *activityService) GetHeatmap(userID uuid.UUID, from, to string) (map[string]bool, error) {
	return s.activityRepo.FindRange(userID, from, to)
}
