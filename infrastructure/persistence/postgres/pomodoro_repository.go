// infrastructure/persistence/postgres/pomodoro_repository.go
package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/repository"
)

type pomodoroRepository struct {
	db *gorm.DB
}

// NewPomodoroRepository creates a new instance of PomodoroRepository.
func NewPomodoroRepository(db *gorm.DB) repository.PomodoroRepository {
	return &pomodoroRepository{db: db}
}

// Create inserts a new session.
func (r *pomodoroRepository) Create(session *models.PomodoroSession) error {
	return r.db.Create(session).Error
}

// GetByID fetches a session by id, scoped to its user.
func (r *pomodoroRepository) GetByID(id, userID uuid.UUID) (*models.PomodoroSession, error) {
	var session models.PomodoroSession
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&session).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// UpdateFields issues a partial update of only the named columns.
func (r *pomodoroRepository) UpdateFields(id, userID uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&models.PomodoroSession{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
}

// FindByUserID lists the user's sessions, most recent first.
func (r *pomodoroRepository) FindByUserID(userID uuid.UUID, limit, offset int) ([]*models.PomodoroSession, int64, error) {
	var sessions []*models.PomodoroSession
	var total int64

	if err := r.db.Model(&models.PomodoroSession{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("user_id = ?", userID).
		Order("start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&sessions).Error

	if err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

// FindRunning returns every unfinished session across users, for re-arming
// completion timers after a restart.
func (r *pomodoroRepository) FindRunning() ([]*models.PomodoroSession, error) {
	var sessions []*models.PomodoroSession
	err := r.db.Where("completed = ? AND interrupted = ?", false, false).
		Find(&sessions).Error

	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// Stats derives focus statistics with aggregate queries.
func (r *pomodoroRepository) Stats(userID uuid.UUID) (*models.PomodoroStats, error) {
	stats := &models.PomodoroStats{UserID: userID}

	if err := r.db.Model(&models.PomodoroSession{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalSessions).Error; err != nil {
		return nil, err
	}

	todayStart := time.Now().Truncate(24 * time.Hour)
	if err := r.db.Model(&models.PomodoroSession{}).
		Where("user_id = ? AND completed = ? AND start_time >= ?", userID, true, todayStart).
		Count(&stats.CompletedToday).Error; err != nil {
		return nil, err
	}

	var focusMinutes *int64
	if err := r.db.Model(&models.PomodoroSession{}).
		Where("user_id = ? AND completed = ? AND type = ?", userID, true, models.PomodoroTypeWork).
		Select("SUM(duration)").
		Scan(&focusMinutes).Error; err != nil {
		return nil, err
	}
	if focusMinutes != nil {
		stats.TotalFocusTime = *focusMinutes
	}

	streak, err := r.currentStreak(userID)
	if err != nil {
		return nil, err
	}
	stats.CurrentStreak = streak

	return stats, nil
}

// currentStreak counts consecutive days ending today (or yesterday) with at
// least one completed work session.
func (r *pomodoroRepository) currentStreak(userID uuid.UUID) (int, error) {
	var days []string
	err := r.db.Model(&models.PomodoroSession{}).
		Where("user_id = ? AND completed = ? AND type = ?", userID, true, models.PomodoroTypeWork).
		Select("DISTINCT to_char(start_time, 'YYYY-MM-DD') AS day").
		Order("day DESC").
		Limit(366).
		Pluck("day", &days).Error
	if err != nil {
		return 0, err
	}
	if len(days) == 0 {
		return 0, nil
	}

	cursor := time.Now()
	today := cursor.Format(models.ActivityDateLayout)
	if days[0] != today {
		// A streak survives until a full day is missed.
		cursor = cursor.AddDate(0, 0, -1)
		if days[0] != cursor.Format(models.ActivityDateLayout) {
			return 0, nil
		}
	}

	streak := 0
	for _, day := range days {
		if day != cursor.Format(models.ActivityDateLayout) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak, nil
}
