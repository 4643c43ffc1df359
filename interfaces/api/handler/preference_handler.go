// interfaces/api/handler/preference_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/domain/port"
	"github.com/tszwong/notizen-api/interfaces/api/middleware"
	"github.com/tszwong/notizen-api/pkg/utils"
)

// PreferenceHandler exposes the last-open-note preference so the client can
// restore the editor after a reload.
type PreferenceHandler struct {
	prefs port.PreferenceStore
}

func NewPreferenceHandler(prefs port.PreferenceStore) *PreferenceHandler {
	return &PreferenceHandler{
		prefs: prefs,
	}
}

// GetLastNote returns the id of the last note the user had open, or null.
func (h *PreferenceHandler) GetLastNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := h.prefs.Get(c.Context(), lastNoteKey(userID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	var data interface{}
	if noteID != "" {
		data = fiber.Map{"noteId": noteID}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// SetLastNote records the note the user switched to.
func (h *PreferenceHandler) SetLastNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var input struct {
		NoteID string `json:"noteId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	if _, err := utils.ParseUUID(input.NoteID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid noteId format",
		})
	}

	if err := h.prefs.Set(c.Context(), lastNoteKey(userID), input.NoteID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// ClearLastNote forgets the stored note, e.g. when a fresh draft opens.
func (h *PreferenceHandler) ClearLastNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	if err := h.prefs.Delete(c.Context(), lastNoteKey(userID)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
