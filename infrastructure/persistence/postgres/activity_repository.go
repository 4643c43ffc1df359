// infrastructure/persistence/postgres/activity_repository.go
package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/repository"
)

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new instance of ActivityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// MarkActive records the date for the user. Re-marking an existing date is
// a no-op; dates are never cleared.
func (r *activityRepository) MarkActive(userID uuid.UUID, date string) error {
	record := models.ActivityRecord{
		UserID:    userID,
		Date:      date,
		CreatedAt: time.Now(),
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(&record).Error
}

// FindRange reads back the active dates in [from, to] as a date->true map.
func (r *activityRepository) FindRange(userID uuid.UUID, from, to string) (map[string]bool, error) {
	var records []*models.ActivityRecord
	err := r.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(records))
	for _, record := range records {
		out[record.Date] = true
	}
	return out, nil
}
