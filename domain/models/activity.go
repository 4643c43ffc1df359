// domain/models/activity.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityDateLayout - date key format for activity records.
const ActivityDateLayout = "2006-01-02"

// ActivityRecord - one "was active on this date" row per user per day.
// Append-only: dates are only ever set, never cleared individually.
type ActivityRecord struct {
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primary_key"`
	Date      string    `json:"date" gorm:"type:varchar(10);primary_key"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
}

// TableName - table name in the database
func (ActivityRecord) TableName() string {
	return "activity_records"
}
