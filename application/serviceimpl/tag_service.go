// application/serviceimpl/tag_service.go
package serviceimpl

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/application/writequeue"
	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/repository"
	"github.com/tszwong/notizen-api/domain/service"
	"github.com/tszwong/notizen-api/domain/types"
)

type tagService struct {
	tagRepo  repository.TagRepository
	listRepo repository.ListRepository
	queue    *writequeue.Queue
}

// NewTagService creates a new instance of TagService.
func NewTagService(tagRepo repository.TagRepository, listRepo repository.ListRepository, queue *writequeue.Queue) service.TagService {
	return &tagService{
		tagRepo:  tagRepo,
		listRepo: listRepo,
		queue:    queue,
	}
}

// CreateTag creates a new tag.
func (s *tagService) CreateTag(ownerID uuid.UUID, name, color string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("tag name is required")
	}

	tag := &models.Tag{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Color:     color,
		CreatedAt: time.Now(),
	}

	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

// UpdateTag renames or recolors a tag.
func (s *tagService) UpdateTag(id, ownerID uuid.UUID, name, color string) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, errors.New("tag not found")
	}

	if name = strings.TrimSpace(name); name != "" {
		tag.Name = name
	}
	if color != "" {
		tag.Color = color
	}

	if err := s.tagRepo.Update(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

// DeleteTag removes the tag from the user's tag set, then fans out one
// partial write per referencing list stripping the reference. Each write is
// independent: a failure leaves that list pointing at a deleted tag, which
// is an acceptable degraded state, not fatal.
func (s *tagService) DeleteTag(id, ownerID uuid.UUID) error {
	tag, err := s.tagRepo.GetByID(id, ownerID)
	if err != nil {
		return err
	}
	if tag == nil {
		return errors.New("tag not found")
	}

	if err := s.tagRepo.Delete(id, ownerID); err != nil {
		return err
	}

	lists, err := s.listRepo.FindByTagID(ownerID, id.String())
	if err != nil {
		log.Printf("[Tags] cascade lookup failed for tag %s: %v", id, err)
		return nil
	}

	tagID := id.String()
	for _, list := range lists {
		listID := list.ID
		err := s.queue.Do(laneKey(listID), func() error {
			// Re-load inside the lane: the lookup snapshot is stale by the
			// time the lane is acquired, and writing it back would drop any
			// tag reference added in between.
			current, err := s.listRepo.GetByID(listID, ownerID)
			if err != nil {
				return err
			}
			if current == nil {
				return nil
			}
			kept := make(types.StringArray, 0, len(current.TagIDs))
			for _, ref := range current.TagIDs {
				if ref != tagID {
					kept = append(kept, ref)
				}
			}
			if len(kept) == len(current.TagIDs) {
				return nil
			}
			return s.listRepo.UpdateFields(listID, ownerID, map[string]interface{}{
				"tag_ids":    kept,
				"updated_at": time.Now(),
			})
		})
		if err != nil {
			log.Printf("[Tags] cascade strip failed for list %s: %v", listID, err)
		}
	}

	return nil
}

// GetUserTags lists the user's tags.
func (s *tagService) GetUserTags(ownerID uuid.UUID) ([]*models.Tag, error) {
	return s.tagRepo.FindByOwnerID(ownerID)
}
