// infrastructure/persistence/postgres/stats_repository.go
package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/repository"
)

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new instance of StatsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// Increment bumps the counter at the dotted path with an atomic upsert.
// The addition happens inside the database, never against a local copy, so
// concurrent increments from different actions all land.
func (r *statsRepository) Increment(userID uuid.UUID, path string, amount int64) error {
	stat := models.UserStat{
		UserID:    userID,
		Path:      path,
		Value:     amount,
		UpdatedAt: time.Now(),
	}

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "path"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      gorm.Expr("user_stats.value + ?", amount),
			"updated_at": time.Now(),
		}),
	}).Create(&stat).Error
}

// FindByUserID returns all counter rows of the user.
func (r *statsRepository) FindByUserID(userID uuid.UUID) ([]*models.UserStat, error) {
	var stats []*models.UserStat
	err := r.db.Where("user_id = ?", userID).Find(&stats).Error

	if err != nil {
		return nil, err
	}

	return stats, nil
}
