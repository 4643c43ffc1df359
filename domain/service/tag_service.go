// domain/service/tag_service.go
package service

import (
	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
)

// TagService - user-level tag management. DeleteTag cascades reference
// cleanup: the tag row is removed, then every list referencing it gets a
// partial write stripping the reference (fan-out, individually failable).
type TagService interface {
	CreateTag(ownerID uuid.UUID, name, color string) (*models.Tag, error)
	UpdateTag(id, ownerID uuid.UUID, name, color string) (*models.Tag, error)
	DeleteTag(id, ownerID uuid.UUID) error
	GetUserTags(ownerID uuid.UUID) ([]*models.Tag, error)
}
