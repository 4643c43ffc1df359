// application/serviceimpl/activity_service_test.go
package serviceimpl

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tszwong/notizen-api/domain/models"
)

type fakeActivityRepo struct {
	mu    sync.Mutex
	dates map[string]bool
	fail  error
}

func (f *fakeActivityRepo) MarkActive(userID uuid.UUID, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	if f.dates == nil {
		f.dates = make(map[string]bool)
	}
	f.dates[date] = true
	return nil
}

func (f *fakeActivityRepo) FindRange(userID uuid.UUID, from, to string) (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]bool)
	for date := range f.dates {
		if date >= from && date <= to {
			out[date] = true
		}
	}
	return out, nil
}

func TestRecordTodayIsIdempotent(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := NewActivityService(repo)
	userID := uuid.New()

	svc.RecordToday(userID)
	svc.RecordToday(userID)

	today := time.Now().Format(models.ActivityDateLayout)
	heatmap, err := svc.GetHeatmap(userID, today, today)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{today: true}, heatmap)
}

func TestRecordTodaySwallowsStoreFailure(t *testing.T) {
	repo := &fakeActivityRepo{fail: errors.New("db down")}
	svc := NewActivityService(repo)

	// must not panic or surface the error
	svc.RecordToday(uuid.New())
}

func TestHeatmapRangeIsInclusive(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := NewActivityService(repo)
	userID := uuid.New()

	require.NoError(t, repo.MarkActive(userID, "2026-08-01"))
	require.NoError(t, repo.MarkActive(userID, "2026-08-15"))
	require.NoError(t, repo.MarkActive(userID, "2026-09-01"))

	heatmap, err := svc.GetHeatmap(userID, "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"2026-08-01": true, "2026-08-15": true}, heatmap)
}
