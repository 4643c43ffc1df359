// domain/models/stats.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Well-known stat counter paths. The set is open-ended; these are the ones
// the mutation pipeline writes.
const (
	StatTasksCreated   = "taskStats.created"
	StatTasksCompleted = "taskStats.completed"
	StatPriorityLow    = "priorityCounts.low"
	StatPriorityMedium = "priorityCounts.medium"
	StatPriorityHigh   = "priorityCounts.high"
	StatNotesCreated   = "noteStats.created"
)

// UserStat - one sparse aggregate counter keyed by a dotted path, e.g.
// "priorityCounts.high". Mutated only by atomic increment at the store,
// never read-modify-write, so concurrent UI actions cannot lose counts.
type UserStat struct {
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primary_key"`
	Path      string    `json:"path" gorm:"type:varchar(100);primary_key"`
	Value     int64     `json:"value" gorm:"not null;default:0"`
	UpdatedAt time.Time `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`
}

// TableName - table name in the database
func (UserStat) TableName() string {
	return "user_stats"
}
