// application/serviceimpl/list_service.go
package serviceimpl

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/application/writequeue"
	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/port"
	"github.com/tszwong/notizen-api/domain/repository"
	"github.com/tszwong/notizen-api/domain/service"
)

// ErrEmptyTask - validation failure for a blank task name. Rejected before
// any write is attempted.
var ErrEmptyTask = errors.New("task name is required")

// ErrInvalidIndex - reorder indices outside the item sequence.
var ErrInvalidIndex = errors.New("reorder index out of range")

type listService struct {
	listRepo  repository.ListRepository
	statsRepo repository.StatsRepository
	queue     *writequeue.Queue
	ws        port.WebSocketPort
}

// NewListService creates a new instance of ListService.
func NewListService(listRepo repository.ListRepository, statsRepo repository.StatsRepository, queue *writequeue.Queue, ws port.WebSocketPort) service.ListService {
	return &listService{
		listRepo:  listRepo,
		statsRepo: statsRepo,
		queue:     queue,
		ws:        ws,
	}
}

// CreateList creates a new, empty list.
func (s *listService) CreateList(ownerID uuid.UUID, title, color string) (*models.TodoList, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("list title is required")
	}

	list := &models.TodoList{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     strings.TrimSpace(title),
		Color:     color,
		Items:     models.ChecklistItems{},
		TagIDs:    []string{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.listRepo.Create(list); err != nil {
		return nil, err
	}

	return list, nil
}

// GetList fetches a list and checks ownership.
func (s *listService) GetList(id, ownerID uuid.UUID) (*models.TodoList, error) {
	list, err := s.listRepo.GetByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, errors.New("list not found")
	}

	return list, nil
}

// GetUserLists lists all lists of the user.
func (s *listService) GetUserLists(ownerID uuid.UUID) ([]*models.TodoList, error) {
	return s.listRepo.FindByOwnerID(ownerID)
}

// RenameList changes the list title.
func (s *listService) RenameList(id, ownerID uuid.UUID, title string) (*models.TodoList, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("list title is required")
	}

	return s.mutate(id, ownerID, func(list *models.TodoList) (map[string]interface{}, error) {
		list.Title = strings.TrimSpace(title)
		return map[string]interface{}{"title": list.Title}, nil
	})
}

// SetColor changes the list color.
func (s *listService) SetColor(id, ownerID uuid.UUID, color string) (*models.TodoList, error) {
	return s.mutate(id, ownerID, func(list *models.TodoList) (map[string]interface{}, error) {
		list.Color = color
		return map[string]interface{}{"color": color}, nil
	})
}

// DeleteList deletes a list.
func (s *listService) DeleteList(id, ownerID uuid.UUID) error {
	list, err := s.listRepo.GetByID(id, ownerID)
	if err != nil {
		return err
	}
	if list == nil {
		return errors.New("list not found")
	}

	err = s.queue.Do(laneKey(id), func() error {
		return s.listRepo.Delete(id, ownerID)
	})
	if err != nil {
		return err
	}

	if s.ws != nil {
		s.ws.BroadcastListDeleted(ownerID, id)
	}
	return nil
}

// AddItem appends a task to the list's ordered sequence.
func (s *listService) AddItem(listID, ownerID uuid.UUID, item models.ChecklistItem) (*models.TodoList, error) {
	item.Task = strings.TrimSpace(item.Task)
	if item.Task == "" {
		return nil, ErrEmptyTask
	}
	if !item.Priority.Valid() {
		item.Priority = models.TaskPriorityMedium
	}
	item.ID = uuid.NewString()
	item.Completed = false

	list, err := s.mutate(listID, ownerID, func(list *models.TodoList) (map[string]interface{}, error) {
		list.Items = append(list.Items, item)
		return map[string]interface{}{"items": list.Items}, nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.statsRepo.Increment(ownerID, models.StatTasksCreated, 1); err != nil {
		logBackground("task created stat", err)
	}
	if err := s.statsRepo.Increment(ownerID, "priorityCounts."+string(item.Priority), 1); err != nil {
		logBackground("priority stat", err)
	}

	return list, nil
}

// ToggleItem flips a task's completed flag. Only the incomplete→complete
// transition increments the lifetime completion counter; toggling back
// never decrements it.
func (s *listService) ToggleItem(listID, ownerID uuid.UUID, itemID string) (*models.TodoList, error) {
	var completedNow bool

	list, err := s.mutate(listID, ownerID, func(list *models.TodoList) (map[string]interface{}, error) {
		idx := indexOfItem(list.Items, itemID)
		if idx < 0 {
			return nil, errors.New("task not found")
		}
		list.Items[idx].Completed = !list.Items[idx].Completed
		completedNow = list.Items[idx].Completed
		return map[string]interface{}{"items": list.Items}, nil
	})
	if err != nil {
		return nil, err
	}

	if completedNow {
		if err := s.statsRepo.Increment(ownerID, models.StatTasksCompleted, 1); err != nil {
			logBackground("task completed stat", err)
		}
	}

	return list, nil
}

// UpdateItem edits the named fields of a task in place.
func (s *listService) UpdateItem(listID, ownerID uuid.UUID, itemID string, update service.ItemUpdate) (*models.TodoList, error) {
	if update.Task != nil && strings.TrimSpace(*update.Task) == "" {
		return nil, ErrEmptyTask
	}
	if update.Priority != nil && !update.Priority.Valid() {
		return nil, errors.New("invalid priority")
	}

	return s.mutate(listID, ownerID, func(list *models.TodoList) (map[string]interface{}, error) {
		idx := indexOfItem(list.Items, itemID)
		if idx < 0 {
			return nil, errors.New("task not found")
		}
		if update.Task != nil {
			list.Items[idx].Task = strings.TrimSpace(*update.Task)
		}
		if update.Priority != nil {
			list.Items[idx].Priority = *update.Priority
		}
		if update.DueDate != nil {
			list.Items[idx].DueDate = *update.DueDate
		}
		if update.Description != nil {
			list.Items[idx].Description = *update.Description
		}
		return map[string]interface{}{"items": list.Items}, nil
	})
}

// DeleteItem removes a task from the sequence.
func (s *listService) DeleteItem(listID, ownerID uuid.UUID, itemID string) (*models.TodoList, error) {
	return s.mutate(listID, ownerID, func(list *models.TodoList) (map[string]interface{}, error) {
		idx := indexOfItem(list.Items, itemID)
		if idx < 0 {
			return nil, errors.New("task not found")
		}
		list.Items = append(list.Items[:idx], list.Items[idx+1:]...)
		return map[string]interface{}{"items": list.Items}, nil
	})
}

// ReorderItems moves the task at fromIndex to toIndex. Pure index move with
// no validation beyond bounds.
func (s *listService) ReorderItems(listID, ownerID uuid.UUID, fromIndex, toIndex int) (*models.TodoList, error) {
	return s.mutate(listID, ownerID, func(list *models.TodoList) (map[string]interface{}, error) {
		n := len(list.Items)
		if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
			return nil, ErrInvalidIndex
		}
		item := list.Items[fromIndex]
		list.Items = append(list.Items[:fromIndex], list.Items[fromIndex+1:]...)
		rest := append(models.ChecklistItems{}, list.Items[:toIndex]...)
		rest = append(rest, item)
		list.Items = append(rest, list.Items[toIndex:]...)
		return map[string]interface{}{"items": list.Items}, nil
	})
}

// AddTagToList attaches a tag reference to the list.
func (s *listService) AddTagToList(listID, ownerID uuid.UUID, tagID string) (*models.TodoList, error) {
	return s.mutate(listID, ownerID, func(list *models.TodoList) (map[string]interface{}, error) {
		if list.HasTag(tagID) {
			return map[string]interface{}{"tag_ids": list.TagIDs}, nil
		}
		list.TagIDs = append(list.TagIDs, tagID)
		return map[string]interface{}{"tag_ids": list.TagIDs}, nil
	})
}

// RemoveTagFromList strips a tag reference from the list.
func (s *listService) RemoveTagFromList(listID, ownerID uuid.UUID, tagID string) (*models.TodoList, error) {
	return s.mutate(listID, ownerID, func(list *models.TodoList) (map[string]interface{}, error) {
		kept := list.TagIDs[:0]
		for _, id := range list.TagIDs {
			if id != tagID {
				kept = append(kept, id)
			}
		}
		list.TagIDs = kept
		return map[string]interface{}{"tag_ids": list.TagIDs}, nil
	})
}

// mutate runs one mutation through the pipeline: load current state, apply
// the change in memory, persist only the changed columns, and publish the
// new state on success. The write is serialized per list through the write
// queue, and a failed write leaves the stored state untouched (the mutated
// copy is simply discarded — nothing optimistic is kept around).
func (s *listService) mutate(listID, ownerID uuid.UUID, apply func(*models.TodoList) (map[string]interface{}, error)) (*models.TodoList, error) {
	var result *models.TodoList

	err := s.queue.Do(laneKey(listID), func() error {
		list, err := s.listRepo.GetByID(listID, ownerID)
		if err != nil {
			return err
		}
		if list == nil {
			return errors.New("list not found")
		}

		fields, err := apply(list)
		if err != nil {
			return err
		}
		fields["updated_at"] = time.Now()

		if err := s.listRepo.UpdateFields(listID, ownerID, fields); err != nil {
			return err
		}

		result = list
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.ws != nil {
		s.ws.BroadcastListUpdated(ownerID, result)
	}
	return result, nil
}

func indexOfItem(items models.ChecklistItems, itemID string) int {
	for i := range items {
		if items[i].ID == itemID {
			return i
		}
	}
	return -1
}

func laneKey(listID uuid.UUID) string {
	return "list:" + listID.String()
}
