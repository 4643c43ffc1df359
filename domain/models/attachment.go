// domain/models/attachment.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Attachment - an uploaded image referenced by the rich-text editor.
type Attachment struct {
	ID       uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID  uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index"`
	NoteID   *uuid.UUID `json:"note_id,omitempty" gorm:"type:uuid;index"`
	URL      string     `json:"url" gorm:"type:text;not null"`
	PublicID string     `json:"public_id" gorm:"type:text"` // storage handle used for deletion
	Format   string     `json:"format,omitempty" gorm:"type:varchar(20)"`
	Size     int        `json:"size"`

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
}

// TableName - table name in the database
func (Attachment) TableName() string {
	return "attachments"
}
