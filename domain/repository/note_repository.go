// domain/repository/note_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
)

type NoteRepository interface {
	// CRUD operations
	Create(note *models.Note) error
	GetByID(id, ownerID uuid.UUID) (*models.Note, error)
	Delete(id, ownerID uuid.UUID) error

	// UpdateFields issues a partial update of only the named columns and
	// returns the authoritative timestamps for the read-back after a flush.
	UpdateFields(id, ownerID uuid.UUID, fields map[string]interface{}) (*models.Note, error)

	// Query operations
	FindByOwnerID(ownerID uuid.UUID, limit, offset int) ([]*models.Note, int64, error)
	SearchNotes(ownerID uuid.UUID, query string, limit, offset int) ([]*models.Note, int64, error)
}
