// infrastructure/persistence/postgres/list_repository.go
package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/repository"
)

type listRepository struct {
	db *gorm.DB
}

// NewListRepository creates a new instance of ListRepository.
func NewListRepository(db *gorm.DB) repository.ListRepository {
	return &listRepository{db: db}
}

// Create inserts a new list.
func (r *listRepository) Create(list *models.TodoList) error {
	return r.db.Create(list).Error
}

// GetByID fetches a list by id, scoped to its owner.
func (r *listRepository) GetByID(id, ownerID uuid.UUID) (*models.TodoList, error) {
	var list models.TodoList
	err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&list).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &list, nil
}

// UpdateFields issues a partial update of only the named columns.
func (r *listRepository) UpdateFields(id, ownerID uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&models.TodoList{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(fields).Error
}

// Delete removes a list.
func (r *listRepository) Delete(id, ownerID uuid.UUID) error {
	return r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.TodoList{}).Error
}

// FindByOwnerID lists the user's lists.
func (r *listRepository) FindByOwnerID(ownerID uuid.UUID) ([]*models.TodoList, error) {
	var lists []*models.TodoList
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&lists).Error

	if err != nil {
		return nil, err
	}

	return lists, nil
}

// FindByTagID returns the lists referencing a tag, using the jsonb
// containment operator.
func (r *listRepository) FindByTagID(ownerID uuid.UUID, tagID string) ([]*models.TodoList, error) {
	var lists []*models.TodoList
	err := r.db.Where("owner_id = ?", ownerID).
		Where("tag_ids @> ?", `["`+tagID+`"]`).
		Find(&lists).Error

	if err != nil {
		return nil, err
	}

	return lists, nil
}
