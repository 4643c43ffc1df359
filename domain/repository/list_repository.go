// domain/repository/list_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
)

type ListRepository interface {
	// CRUD operations
	Create(list *models.TodoList) error
	GetByID(id, ownerID uuid.UUID) (*models.TodoList, error)
	Delete(id, ownerID uuid.UUID) error

	// UpdateFields issues a partial update of only the changed columns.
	// Every mutation in the pipeline writes through here, never a full
	// document replace.
	UpdateFields(id, ownerID uuid.UUID, fields map[string]interface{}) error

	// Query operations
	FindByOwnerID(ownerID uuid.UUID) ([]*models.TodoList, error)
	FindByTagID(ownerID uuid.UUID, tagID string) ([]*models.TodoList, error)
}
