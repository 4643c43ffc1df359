// application/serviceimpl/pomodoro_service_test.go
package serviceimpl

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tszwong/notizen-api/domain/models"
)

type pomodoroFixture struct {
	svc    *PomodoroServiceImpl
	repo   *fakePomodoroRepo
	stats  *fakeStatsRepo
	ws     *fakeWS
	timer  *fakeTimer
	userID uuid.UUID
}

func newPomodoroFixture(t *testing.T) *pomodoroFixture {
	t.Helper()
	repo := newFakePomodoroRepo()
	stats := newFakeStatsRepo()
	ws := &fakeWS{}
	timer := &fakeTimer{}

	svc := NewPomodoroService(repo, stats, ws)
	svc.SetTimer(timer)

	return &pomodoroFixture{svc: svc, repo: repo, stats: stats, ws: ws, timer: timer, userID: uuid.New()}
}

func TestStartSessionArmsTimer(t *testing.T) {
	f := newPomodoroFixture(t)

	session, err := f.svc.StartSession(f.userID, models.PomodoroTypeWork, 25)
	require.NoError(t, err)

	assert.Equal(t, 25, session.Duration)
	assert.WithinDuration(t, session.StartTime.Add(25*time.Minute), session.EndTime, time.Second)
	assert.Equal(t, []uuid.UUID{session.ID}, f.timer.scheduled)
}

func TestStartSessionValidation(t *testing.T) {
	f := newPomodoroFixture(t)

	_, err := f.svc.StartSession(f.userID, models.PomodoroTypeWork, 0)
	require.EqualError(t, err, "duration must be positive")

	// unknown type falls back to work rather than failing
	session, err := f.svc.StartSession(f.userID, "nap", 5)
	require.NoError(t, err)
	assert.Equal(t, models.PomodoroTypeWork, session.Type)
}

func TestInterruptCancelsTimer(t *testing.T) {
	f := newPomodoroFixture(t)
	session, err := f.svc.StartSession(f.userID, models.PomodoroTypeWork, 25)
	require.NoError(t, err)

	interrupted, err := f.svc.InterruptSession(session.ID, f.userID)
	require.NoError(t, err)
	assert.True(t, interrupted.Interrupted)
	assert.Equal(t, []uuid.UUID{session.ID}, f.timer.cancelled)

	// a finished session cannot be interrupted again
	_, err = f.svc.InterruptSession(session.ID, f.userID)
	require.EqualError(t, err, "session already finished")
}

func TestCompleteSessionIsIdempotent(t *testing.T) {
	f := newPomodoroFixture(t)
	session, err := f.svc.StartSession(f.userID, models.PomodoroTypeWork, 25)
	require.NoError(t, err)

	first, err := f.svc.CompleteSession(session.ID, f.userID)
	require.NoError(t, err)
	assert.True(t, first.Completed)

	// the timer firing after a manual complete is a no-op
	again, err := f.svc.CompleteSession(session.ID, f.userID)
	require.NoError(t, err)
	assert.True(t, again.Completed)

	assert.Equal(t, int64(1), f.stats.count("pomodoroStats.completed"))
	f.ws.mu.Lock()
	completions := len(f.ws.completed)
	f.ws.mu.Unlock()
	assert.Equal(t, 1, completions)
}

func TestCompleteInterruptedSessionFails(t *testing.T) {
	f := newPomodoroFixture(t)
	session, err := f.svc.StartSession(f.userID, models.PomodoroTypeWork, 25)
	require.NoError(t, err)

	_, err = f.svc.InterruptSession(session.ID, f.userID)
	require.NoError(t, err)

	_, err = f.svc.CompleteSession(session.ID, f.userID)
	require.EqualError(t, err, "session was interrupted")
	assert.Equal(t, int64(0), f.stats.count("pomodoroStats.completed"))
}

func TestOnlyWorkSessionsCountTowardStats(t *testing.T) {
	f := newPomodoroFixture(t)
	session, err := f.svc.StartSession(f.userID, models.PomodoroTypeShortBreak, 5)
	require.NoError(t, err)

	_, err = f.svc.CompleteSession(session.ID, f.userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.stats.count("pomodoroStats.completed"))
}

func TestSessionOwnershipIsEnforced(t *testing.T) {
	f := newPomodoroFixture(t)
	session, err := f.svc.StartSession(f.userID, models.PomodoroTypeWork, 25)
	require.NoError(t, err)

	_, err = f.svc.CompleteSession(session.ID, uuid.New())
	require.EqualError(t, err, "session not found")
}
