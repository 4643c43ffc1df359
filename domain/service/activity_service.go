// domain/service/activity_service.go
package service

import (
	"github.com/google/uuid"
)

// ActivityService - per-user "was active today" recording and the heatmap
// read-back. RecordToday is a pure side-effecting write with no internal
// state; failures are logged, never surfaced.
type ActivityService interface {
	RecordToday(userID uuid.UUID)
	GetHeatmap(userID uuid.UUID, from, to string) (map[string]bool, error)
}
