// domain/models/pomodoro.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// PomodoroType - kind of pomodoro interval
type PomodoroType string

const (
	PomodoroTypeWork       PomodoroType = "work"
	PomodoroTypeShortBreak PomodoroType = "short_break"
	PomodoroTypeLongBreak  PomodoroType = "long_break"
)

// PomodoroSession - one timed focus/break interval. A running session is
// auto-completed by the timer manager at its end time unless interrupted.
type PomodoroSession struct {
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID      uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;index"`
	Type        PomodoroType `json:"type" gorm:"type:varchar(20);default:'work'"`
	StartTime   time.Time    `json:"start_time" gorm:"type:timestamp with time zone;not null"`
	EndTime     time.Time    `json:"end_time" gorm:"type:timestamp with time zone;not null"`
	Duration    int          `json:"duration"` // minutes
	Completed   bool         `json:"completed" gorm:"default:false"`
	Interrupted bool         `json:"interrupted" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	User *User `json:"user,omitempty" gorm:"foreignkey:UserID"`
}

// TableName - table name in the database
func (PomodoroSession) TableName() string {
	return "pomodoro_sessions"
}

// PomodoroStats - derived focus statistics, computed at read time.
type PomodoroStats struct {
	UserID         uuid.UUID `json:"user_id"`
	TotalSessions  int64     `json:"total_sessions"`
	CompletedToday int64     `json:"completed_today"`
	TotalFocusTime int64     `json:"total_focus_time"` // minutes
	CurrentStreak  int       `json:"current_streak"`   // consecutive days with a completed work session
}
