// application/serviceimpl/pomodoro_service.go
package serviceimpl

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/port"
	"github.com/tszwong/notizen-api/domain/repository"
	"github.com/tszwong/notizen-api/domain/service"
)

// SessionTimer arms one auto-completion timer per running session.
type SessionTimer interface {
	Schedule(sessionID, userID uuid.UUID, endsAt time.Time)
	Cancel(sessionID uuid.UUID) bool
}

type pomodoroService struct {
	pomodoroRepo repository.PomodoroRepository
	statsRepo    repository.StatsRepository
	ws           port.WebSocketPort
	timer        SessionTimer
}

// NewPomodoroService creates a new instance of PomodoroService. The timer
// manager is wired afterwards via SetTimer because it needs this service as
// its callback.
func NewPomodoroService(pomodoroRepo repository.PomodoroRepository, statsRepo repository.StatsRepository, ws port.WebSocketPort) *PomodoroServiceImpl {
	return &PomodoroServiceImpl{pomodoroService{
		pomodoroRepo: pomodoroRepo,
		statsRepo:    statsRepo,
		ws:           ws,
	}}
}

// PomodoroServiceImpl exposes SetTimer on top of the service interface.
type PomodoroServiceImpl struct {
	pomodoroService
}

var _ service.PomodoroService = (*PomodoroServiceImpl)(nil)

// SetTimer attaches the auto-completion timer manager.
func (s *PomodoroServiceImpl) SetTimer(timer SessionTimer) {
	s.timer = timer
}

// StartSession creates a running session and arms its completion timer.
func (s *pomodoroService) StartSession(userID uuid.UUID, sessionType models.PomodoroType, durationMinutes int) (*models.PomodoroSession, error) {
	if durationMinutes <= 0 {
		return nil, errors.New("duration must be positive")
	}
	switch sessionType {
	case models.PomodoroTypeWork, models.PomodoroTypeShortBreak, models.PomodoroTypeLongBreak:
	default:
		sessionType = models.PomodoroTypeWork
	}

	now := time.Now()
	session := &models.PomodoroSession{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      sessionType,
		StartTime: now,
		EndTime:   now.Add(time.Duration(durationMinutes) * time.Minute),
		Duration:  durationMinutes,
		CreatedAt: now,
	}

	if err := s.pomodoroRepo.Create(session); err != nil {
		return nil, err
	}

	if s.timer != nil {
		s.timer.Schedule(session.ID, userID, session.EndTime)
	}

	return session, nil
}

// InterruptSession cancels the timer and marks the session interrupted.
func (s *pomodoroService) InterruptSession(id, userID uuid.UUID) (*models.PomodoroSession, error) {
	session, err := s.pomodoroRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.New("session not found")
	}
	if session.Completed || session.Interrupted {
		return nil, errors.New("session already finished")
	}

	if s.timer != nil {
		s.timer.Cancel(id)
	}

	if err := s.pomodoroRepo.UpdateFields(id, userID, map[string]interface{}{
		"interrupted": true,
		"end_time":    time.Now(),
	}); err != nil {
		return nil, err
	}

	session.Interrupted = true
	return session, nil
}

// CompleteSession marks the session completed. Called by the timer manager
// at the session's end time, or by the client confirming completion.
func (s *pomodoroService) CompleteSession(id, userID uuid.UUID) (*models.PomodoroSession, error) {
	session, err := s.pomodoroRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.New("session not found")
	}
	if session.Interrupted {
		return nil, errors.New("session was interrupted")
	}
	if session.Completed {
		return session, nil
	}

	if err := s.pomodoroRepo.UpdateFields(id, userID, map[string]interface{}{
		"completed": true,
	}); err != nil {
		return nil, err
	}
	session.Completed = true

	if session.Type == models.PomodoroTypeWork {
		if err := s.statsRepo.Increment(userID, "pomodoroStats.completed", 1); err != nil {
			logBackground("pomodoro stat", err)
		}
	}
	if s.ws != nil {
		s.ws.BroadcastPomodoroCompleted(userID, session)
	}

	return session, nil
}

// GetSessions lists the user's sessions.
func (s *pomodoroService) GetSessions(userID uuid.UUID, limit, offset int) ([]*models.PomodoroSession, int64, error) {
	return s.pomodoroRepo.FindByUserID(userID, limit, offset)
}

// GetStats returns derived focus statistics.
func (s *pomodoroService) GetStats(userID uuid.UUID) (*models.PomodoroStats, error) {
	return s.pomodoroRepo.Stats(userID)
}
