// interfaces/api/handler/list_handler.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/application/serviceimpl"
	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/service"
	"github.com/tszwong/notizen-api/interfaces/api/middleware"
	"github.com/tszwong/notizen-api/pkg/utils"
)

type ListHandler struct {
	listService service.ListService
	activity    service.ActivityService
}

func NewListHandler(listService service.ListService, activity service.ActivityService) *ListHandler {
	return &ListHandler{
		listService: listService,
		activity:    activity,
	}
}

// listMutationStatus maps service errors onto HTTP codes.
func listMutationStatus(err error) int {
	switch {
	case errors.Is(err, serviceimpl.ErrEmptyTask), errors.Is(err, serviceimpl.ErrInvalidIndex):
		return fiber.StatusBadRequest
	case err.Error() == "list not found", err.Error() == "task not found":
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// CreateList creates an empty list.
func (h *ListHandler) CreateList(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var input struct {
		Title string `json:"title"`
		Color string `json:"color"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	list, err := h.listService.CreateList(userID, input.Title, input.Color)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	h.activity.RecordToday(userID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "List created successfully",
		"data":    list,
	})
}

// GetLists returns all lists owned by the user.
func (h *ListHandler) GetLists(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	lists, err := h.listService.GetUserLists(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    lists,
	})
}

// GetList fetches a single list.
func (h *ListHandler) GetList(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	listID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid list ID: " + err.Error(),
		})
	}

	list, err := h.listService.GetList(listID, userID)
	if err != nil {
		return c.Status(listMutationStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    list,
	})
}

// UpdateList renames a list and/or changes its color.
func (h *ListHandler) UpdateList(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	listID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid list ID: " + err.Error(),
		})
	}

	var input struct {
		Title *string `json:"title,omitempty"`
		Color *string `json:"color,omitempty"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	var list *models.TodoList
	if input.Title != nil {
		list, err = h.listService.RenameList(listID, userID, *input.Title)
		if err != nil {
			return c.Status(listMutationStatus(err)).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
	}
	if input.Color != nil {
		list, err = h.listService.SetColor(listID, userID, *input.Color)
		if err != nil {
			return c.Status(listMutationStatus(err)).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
	}
	if list == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Nothing to update",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    list,
	})
}

// DeleteList removes a list.
func (h *ListHandler) DeleteList(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	listID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid list ID: " + err.Error(),
		})
	}

	if err := h.listService.DeleteList(listID, userID); err != nil {
		return c.Status(listMutationStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "List deleted successfully",
	})
}

// AddItem appends a task to a list.
func (h *ListHandler) AddItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	listID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid list ID: " + err.Error(),
		})
	}

	var input struct {
		Task        string              `json:"task"`
		Priority    models.TaskPriority `json:"priority"`
		DueDate     string              `json:"due_date"`
		Description string              `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	list, err := h.listService.AddItem(listID, userID, models.ChecklistItem{
		Task:        input.Task,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Description: input.Description,
	})
	if err != nil {
		return c.Status(listMutationStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	h.activity.RecordToday(userID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    list,
	})
}

// ToggleItem flips an item's completion state.
func (h *ListHandler) ToggleItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	listID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid list ID: " + err.Error(),
		})
	}

	itemID := c.Params("itemId")

	list, err := h.listService.ToggleItem(listID, userID, itemID)
	if err != nil {
		return c.Status(listMutationStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	h.activity.RecordToday(userID)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    list,
	})
}

// UpdateItem edits the provided fields of an item.
func (h *ListHandler) UpdateItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	listID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid list ID: " + err.Error(),
		})
	}

	var update service.ItemUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	list, err := h.listService.UpdateItem(listID, userID, c.Params("itemId"), update)
	if err != nil {
		return c.Status(listMutationStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    list,
	})
}

// DeleteItem removes an item from a list.
func (h *ListHandler) DeleteItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	listID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid list ID: " + err.Error(),
		})
	}

	list, err := h.listService.DeleteItem(listID, userID, c.Params("itemId"))
	if err != nil {
		return c.Status(listMutationStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    list,
	})
}

// ReorderItems moves an item between positions.
func (h *ListHandler) ReorderItems(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	listID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid list ID: " + err.Error(),
		})
	}

	var input struct {
		FromIndex int `json:"from_index"`
		ToIndex   int `json:"to_index"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	list, err := h.listService.ReorderItems(listID, userID, input.FromIndex, input.ToIndex)
	if err != nil {
		return c.Status(listMutationStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    list,
	})
}

// AddTag attaches a tag reference to a list.
func (h *ListHandler) AddTag(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	listID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid list ID: " + err.Error(),
		})
	}

	list, err := h.listService.AddTagToList(listID, userID, c.Params("tagId"))
	if err != nil {
		return c.Status(listMutationStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    list,
	})
}

// RemoveTag detaches a tag reference from a list.
func (h *ListHandler) RemoveTag(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	listID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid list ID: " + err.Error(),
		})
	}

	list, err := h.listService.RemoveTagFromList(listID, userID, c.Params("tagId"))
	if err != nil {
		return c.Status(listMutationStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    list,
	})
}
