// domain/repository/attachment_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
)

type AttachmentRepository interface {
	Create(attachment *models.Attachment) error
	GetByID(id, ownerID uuid.UUID) (*models.Attachment, error)
	Delete(id, ownerID uuid.UUID) error
	FindByNoteID(noteID, ownerID uuid.UUID) ([]*models.Attachment, error)
}
