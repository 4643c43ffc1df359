// infrastructure/persistence/postgres/tag_repository.go
package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/repository"
)

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new instance of TagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

// Create inserts a new tag.
func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// GetByID fetches a tag by id, scoped to its owner.
func (r *tagRepository) GetByID(id, ownerID uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&tag).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &tag, nil
}

// Update saves the tag row.
func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// Delete removes a tag.
func (r *tagRepository) Delete(id, ownerID uuid.UUID) error {
	return r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Tag{}).Error
}

// FindByOwnerID lists the user's tags.
func (r *tagRepository) FindByOwnerID(ownerID uuid.UUID) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&tags).Error

	if err != nil {
		return nil, err
	}

	return tags, nil
}
