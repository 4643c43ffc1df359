// infrastructure/persistence/postgres/attachment_repository.go
package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/repository"
)

type attachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new instance of AttachmentRepository.
func NewAttachmentRepository(db *gorm.DB) repository.AttachmentRepository {
	return &attachmentRepository{db: db}
}

// Create inserts a new attachment row.
func (r *attachmentRepository) Create(attachment *models.Attachment) error {
	return r.db.Create(attachment).Error
}

// GetByID fetches an attachment by id, scoped to its owner.
func (r *attachmentRepository) GetByID(id, ownerID uuid.UUID) (*models.Attachment, error) {
	var attachment models.Attachment
	err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&attachment).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &attachment, nil
}

// Delete removes an attachment row.
func (r *attachmentRepository) Delete(id, ownerID uuid.UUID) error {
	return r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Attachment{}).Error
}

// FindByNoteID lists a note's attachments.
func (r *attachmentRepository) FindByNoteID(noteID, ownerID uuid.UUID) ([]*models.Attachment, error) {
	var attachments []*models.Attachment
	err := r.db.Where("note_id = ? AND owner_id = ?", noteID, ownerID).
		Order("created_at ASC").
		Find(&attachments).Error

	if err != nil {
		return nil, err
	}

	return attachments, nil
}
