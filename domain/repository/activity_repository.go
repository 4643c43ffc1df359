// domain/repository/activity_repository.go
package repository

import (
	"github.com/google/uuid"
)

type ActivityRepository interface {
	// MarkActive records the date as active for the user. Idempotent;
	// dates are never cleared individually.
	MarkActive(userID uuid.UUID, date string) error

	// FindRange returns the active dates between from and to inclusive,
	// as a date(YYYY-MM-DD) -> true map for the heatmap.
	FindRange(userID uuid.UUID, from, to string) (map[string]bool, error)
}
