// domain/service/note_service.go
package service

import (
	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
)

// NoteService - note CRUD below the autosave controller. SaveDraft is the
// debounced flush target: it creates the note on first flush (identity
// adoption) and partially updates title/content afterwards.
type NoteService interface {
	CreateNote(ownerID uuid.UUID, title, content string) (*models.Note, error)
	GetNote(id, ownerID uuid.UUID) (*models.Note, error)
	SaveDraft(id *uuid.UUID, ownerID uuid.UUID, title, content string) (*models.Note, error)
	DeleteNote(id, ownerID uuid.UUID) error

	GetUserNotes(ownerID uuid.UUID, limit, offset int) ([]*models.Note, int64, error)
	SearchNotes(ownerID uuid.UUID, query string, limit, offset int) ([]*models.Note, int64, error)
}
