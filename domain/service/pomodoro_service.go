// domain/service/pomodoro_service.go
package service

import (
	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
)

// PomodoroService - timed focus sessions. A started session is armed with an
// in-memory timer that auto-completes it at its end time; Interrupt cancels
// the timer and marks the session interrupted.
type PomodoroService interface {
	StartSession(userID uuid.UUID, sessionType models.PomodoroType, durationMinutes int) (*models.PomodoroSession, error)
	InterruptSession(id, userID uuid.UUID) (*models.PomodoroSession, error)
	CompleteSession(id, userID uuid.UUID) (*models.PomodoroSession, error)
	GetSessions(userID uuid.UUID, limit, offset int) ([]*models.PomodoroSession, int64, error)
	GetStats(userID uuid.UUID) (*models.PomodoroStats, error)
}
