// domain/repository/pomodoro_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
)

type PomodoroRepository interface {
	Create(session *models.PomodoroSession) error
	GetByID(id, userID uuid.UUID) (*models.PomodoroSession, error)
	UpdateFields(id, userID uuid.UUID, fields map[string]interface{}) error
	FindByUserID(userID uuid.UUID, limit, offset int) ([]*models.PomodoroSession, int64, error)

	// FindRunning returns every session that is neither completed nor
	// interrupted, across users. Used to re-arm timers after a restart.
	FindRunning() ([]*models.PomodoroSession, error)

	Stats(userID uuid.UUID) (*models.PomodoroStats, error)
}
