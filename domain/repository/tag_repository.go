// domain/repository/tag_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByID(id, ownerID uuid.UUID) (*models.Tag, error)
	Update(tag *models.Tag) error
	Delete(id, ownerID uuid.UUID) error
	FindByOwnerID(ownerID uuid.UUID) ([]*models.Tag, error)
}
