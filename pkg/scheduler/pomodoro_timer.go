// pkg/scheduler/pomodoro_timer.go
package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
)

// TimerCallback fires when a session reaches its end time
type TimerCallback func(sessionID, userID uuid.UUID)

// sessionTimer holds one armed timer
type sessionTimer struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
	EndsAt    time.Time
	Timer     *time.Timer
}

// PomodoroTimerManager keeps in-memory timers that auto-complete running
// focus sessions
type PomodoroTimerManager struct {
	mu       sync.RWMutex
	timers   map[uuid.UUID]*sessionTimer
	callback TimerCallback
}

// NewPomodoroTimerManager creates a new manager
func NewPomodoroTimerManager(callback TimerCallback) *PomodoroTimerManager {
	return &PomodoroTimerManager{
		timers:   make(map[uuid.UUID]*sessionTimer),
		callback: callback,
	}
}

// Schedule arms a timer for a running session, replacing any existing one
func (tm *PomodoroTimerManager) Schedule(sessionID, userID uuid.UUID, endsAt time.Time) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if existing, ok := tm.timers[sessionID]; ok {
		existing.Timer.Stop()
		delete(tm.timers, sessionID)
	}

	duration := time.Until(endsAt)

	// Already past due, complete immediately
	if duration <= 0 {
		log.Printf("[PomodoroTimer] Session %s is past due, completing immediately", sessionID)
		go tm.fire(sessionID, userID)
		return
	}

	timer := time.AfterFunc(duration, func() {
		log.Printf("[PomodoroTimer] Timer fired for session %s", sessionID)
		tm.fire(sessionID, userID)
		tm.remove(sessionID)
	})

	tm.timers[sessionID] = &sessionTimer{
		SessionID: sessionID,
		UserID:    userID,
		EndsAt:    endsAt,
		Timer:     timer,
	}

	log.Printf("[PomodoroTimer] Scheduled session %s for %s (in %v)", sessionID, endsAt.Format(time.RFC3339), duration)
}

// Cancel disarms the timer for an interrupted session
func (tm *PomodoroTimerManager) Cancel(sessionID uuid.UUID) bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if timer, ok := tm.timers[sessionID]; ok {
		timer.Timer.Stop()
		delete(tm.timers, sessionID)
		log.Printf("[PomodoroTimer] Cancelled timer for session %s", sessionID)
		return true
	}
	return false
}

func (tm *PomodoroTimerManager) fire(sessionID, userID uuid.UUID) {
	tm.mu.RLock()
	callback := tm.callback
	tm.mu.RUnlock()

	if callback != nil {
		callback(sessionID, userID)
	}
}

// remove drops a timer from the map (internal use)
func (tm *PomodoroTimerManager) remove(sessionID uuid.UUID) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	delete(tm.timers, sessionID)
}

// Count reports the number of armed timers
func (tm *PomodoroTimerManager) Count() int {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return len(tm.timers)
}

// Has reports whether a session has an armed timer
func (tm *PomodoroTimerManager) Has(sessionID uuid.UUID) bool {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	_, ok := tm.timers[sessionID]
	return ok
}

// StopAll disarms every timer (called on shutdown)
func (tm *PomodoroTimerManager) StopAll() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	for id, timer := range tm.timers {
		timer.Timer.Stop()
		delete(tm.timers, id)
	}
	log.Println("[PomodoroTimer] All timers stopped")
}

// RearmPending re-arms timers for sessions that were running when the
// process last stopped. Past-due sessions fire immediately.
func (tm *PomodoroTimerManager) RearmPending(sessions []*models.PomodoroSession) int {
	count := 0
	for _, session := range sessions {
		tm.Schedule(session.ID, session.UserID, session.EndTime)
		count++
	}
	return count
}
