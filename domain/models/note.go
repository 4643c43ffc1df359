// domain/models/note.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Note - a rich-text note owned by exactly one user. The persisted copy lags
// the editor state by at most one debounce interval; created_at/updated_at
// are authoritative and read back after every flush.
type Note struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Title   string    `json:"title" gorm:"type:varchar(255)"`
	Content string    `json:"content" gorm:"type:text"` // rich HTML markup

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	Owner *User `json:"owner,omitempty" gorm:"foreignkey:OwnerID"`
}

// TableName - table name in the database
func (Note) TableName() string {
	return "notes"
}
