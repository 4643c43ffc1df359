// domain/repository/stats_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
)

type StatsRepository interface {
	// Increment atomically adds amount to the counter at the dotted path,
	// creating the row if missing. Never read-modify-write: concurrent
	// increments from different UI actions must all land.
	Increment(userID uuid.UUID, path string, amount int64) error

	FindByUserID(userID uuid.UUID) ([]*models.UserStat, error)
}
