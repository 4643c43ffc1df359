// domain/models/user.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// User - local mirror of an identity-provider account, upserted on first
// authenticated request.
type User struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	Email       string     `json:"email,omitempty" gorm:"type:varchar(255);unique"`
	DisplayName string     `json:"display_name,omitempty" gorm:"type:varchar(100)"`
	PhotoURL    string     `json:"photo_url,omitempty" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	LastSeenAt  *time.Time `json:"last_seen_at,omitempty" gorm:"type:timestamp with time zone"`

	// Associations
	Notes []*Note     `json:"notes,omitempty" gorm:"foreignkey:OwnerID"`
	Lists []*TodoList `json:"lists,omitempty" gorm:"foreignkey:OwnerID"`
	Tags  []*Tag      `json:"tags,omitempty" gorm:"foreignkey:OwnerID"`
}

// TableName - table name in the database
func (User) TableName() string {
	return "users"
}
