// domain/service/list_service.go
package service

import (
	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
)

// ItemUpdate - optional field edits for a checklist item. Nil means leave
// the field untouched.
type ItemUpdate struct {
	Task        *string              `json:"task,omitempty"`
	Priority    *models.TaskPriority `json:"priority,omitempty"`
	DueDate     *string              `json:"due_date,omitempty"`
	Description *string              `json:"description,omitempty"`
}

// ListService - the task/list mutation pipeline. Every mutation validates,
// computes the new list state, persists a partial update of only the changed
// columns, and publishes the new state only after the write succeeds.
type ListService interface {
	CreateList(ownerID uuid.UUID, title, color string) (*models.TodoList, error)
	GetList(id, ownerID uuid.UUID) (*models.TodoList, error)
	GetUserLists(ownerID uuid.UUID) ([]*models.TodoList, error)
	RenameList(id, ownerID uuid.UUID, title string) (*models.TodoList, error)
	SetColor(id, ownerID uuid.UUID, color string) (*models.TodoList, error)
	DeleteList(id, ownerID uuid.UUID) error

	AddItem(listID, ownerID uuid.UUID, item models.ChecklistItem) (*models.TodoList, error)
	ToggleItem(listID, ownerID uuid.UUID, itemID string) (*models.TodoList, error)
	UpdateItem(listID, ownerID uuid.UUID, itemID string, update ItemUpdate) (*models.TodoList, error)
	DeleteItem(listID, ownerID uuid.UUID, itemID string) (*models.TodoList, error)
	ReorderItems(listID, ownerID uuid.UUID, fromIndex, toIndex int) (*models.TodoList, error)

	AddTagToList(listID, ownerID uuid.UUID, tagID string) (*models.TodoList, error)
	RemoveTagFromList(listID, ownerID uuid.UUID, tagID string) (*models.TodoList, error)
}
