// domain/models/tag.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag - a user-owned label referenced by lists. Deleting a tag cascades
// reference cleanup across lists, never list deletion.
type Tag struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Name    string    `json:"name" gorm:"type:varchar(100);not null"`
	Color   string    `json:"color,omitempty" gorm:"type:varchar(20)"`

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	Owner *User `json:"owner,omitempty" gorm:"foreignkey:OwnerID"`
}

// TableName - table name in the database
func (Tag) TableName() string {
	return "tags"
}
