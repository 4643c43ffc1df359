// infrastructure/persistence/postgres/note_repository.go
package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/repository"
)

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new instance of NoteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create inserts a new note.
func (r *noteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// GetByID fetches a note by id, scoped to its owner.
func (r *noteRepository) GetByID(id, ownerID uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&note).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// UpdateFields issues a partial update of only the named columns and reads
// the row back so callers get the authoritative timestamps.
func (r *noteRepository) UpdateFields(id, ownerID uuid.UUID, fields map[string]interface{}) (*models.Note, error) {
	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.Note{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.GetByID(id, ownerID)
}

// Delete removes a note.
func (r *noteRepository) Delete(id, ownerID uuid.UUID) error {
	return r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Note{}).Error
}

// FindByOwnerID lists the user's notes, most recently updated first.
func (r *noteRepository) FindByOwnerID(ownerID uuid.UUID, limit, offset int) ([]*models.Note, int64, error) {
	var notes []*models.Note
	var total int64

	if err := r.db.Model(&models.Note{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error

	if err != nil {
		return nil, 0, err
	}

	return notes, total, nil
}

// SearchNotes matches title or content case-insensitively.
func (r *noteRepository) SearchNotes(ownerID uuid.UUID, searchQuery string, limit, offset int) ([]*models.Note, int64, error) {
	var notes []*models.Note
	var total int64

	pattern := "%" + searchQuery + "%"
	baseQuery := r.db.Model(&models.Note{}).
		Where("owner_id = ?", ownerID).
		Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := baseQuery.
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error

	if err != nil {
		return nil, 0, err
	}

	return notes, total, nil
}
