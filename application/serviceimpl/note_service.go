// application/serviceimpl/note_service.go
package serviceimpl

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/repository"
	"github.com/tszwong/notizen-api/domain/service"
)

type noteService struct {
	noteRepo  repository.NoteRepository
	statsRepo repository.StatsRepository
}

// NewNoteService creates a new instance of NoteService.
func NewNoteService(noteRepo repository.NoteRepository, statsRepo repository.StatsRepository) service.NoteService {
	return &noteService{
		noteRepo:  noteRepo,
		statsRepo: statsRepo,
	}
}

// CreateNote creates a new note.
func (s *noteService) CreateNote(ownerID uuid.UUID, title, content string) (*models.Note, error) {
	note := &models.Note{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, err
	}

	// Background counter; a failed increment never fails the create.
	if err := s.statsRepo.Increment(ownerID, models.StatNotesCreated, 1); err != nil {
		logBackground("note create stat", err)
	}

	return note, nil
}

// GetNote fetches a note and checks ownership.
func (s *noteService) GetNote(id, ownerID uuid.UUID) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, errors.New("note not found")
	}

	return note, nil
}

// SaveDraft is the autosave flush target. With no identity yet it creates
// the note; otherwise it issues a partial update of only title and content.
// The returned note carries the authoritative timestamps for the read-back.
func (s *noteService) SaveDraft(id *uuid.UUID, ownerID uuid.UUID, title, content string) (*models.Note, error) {
	if id == nil {
		return s.CreateNote(ownerID, title, content)
	}

	note, err := s.noteRepo.UpdateFields(*id, ownerID, map[string]interface{}{
		"title":   title,
		"content": content,
	})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, errors.New("note not found")
	}

	return note, nil
}

// DeleteNote deletes a note.
func (s *noteService) DeleteNote(id, ownerID uuid.UUID) error {
	note, err := s.noteRepo.GetByID(id, ownerID)
	if err != nil {
		return err
	}
	if note == nil {
		return errors.New("note not found")
	}

	return s.noteRepo.Delete(id, ownerID)
}

// GetUserNotes lists the user's notes.
func (s *noteService) GetUserNotes(ownerID uuid.UUID, limit, offset int) ([]*models.Note, int64, error) {
	return s.noteRepo.FindByOwnerID(ownerID, limit, offset)
}

// SearchNotes searches notes by text.
func (s *noteService) SearchNotes(ownerID uuid.UUID, query string, limit, offset int) ([]*models.Note, int64, error) {
	if query == "" {
		return nil, 0, errors.New("search query cannot be empty")
	}

	return s.noteRepo.SearchNotes(ownerID, query, limit, offset)
}
