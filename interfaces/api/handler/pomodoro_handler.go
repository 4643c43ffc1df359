// interfaces/api/handler/pomodoro_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/service"
	"github.com/tszwong/notizen-api/interfaces/api/middleware"
	"github.com/tszwong/notizen-api/pkg/utils"
)

type PomodoroHandler struct {
	pomodoroService service.PomodoroService
}

func NewPomodoroHandler(pomodoroService service.PomodoroService) *PomodoroHandler {
	return &PomodoroHandler{
		pomodoroService: pomodoroService,
	}
}

// StartSession starts a work or break session and arms its timer.
func (h *PomodoroHandler) StartSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var input struct {
		Type            models.PomodoroType `json:"type"`
		DurationMinutes int                 `json:"duration_minutes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	session, err := h.pomodoroService.StartSession(userID, input.Type, input.DurationMinutes)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    session,
	})
}

// InterruptSession cancels a running session.
func (h *PomodoroHandler) InterruptSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	sessionID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid session ID: " + err.Error(),
		})
	}

	session, err := h.pomodoroService.InterruptSession(sessionID, userID)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		if err.Error() == "session not found" {
			statusCode = fiber.StatusNotFound
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    session,
	})
}

// CompleteSession marks a session finished. Idempotent; normally driven by
// the in-memory timer rather than this endpoint.
func (h *PomodoroHandler) CompleteSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	sessionID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid session ID: " + err.Error(),
		})
	}

	session, err := h.pomodoroService.CompleteSession(sessionID, userID)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		if err.Error() == "session not found" {
			statusCode = fiber.StatusNotFound
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    session,
	})
}

// GetSessions lists past sessions, newest first.
func (h *PomodoroHandler) GetSessions(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	sessions, total, err := h.pomodoroService.GetSessions(userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sessions,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetStats returns aggregate focus statistics.
func (h *PomodoroHandler) GetStats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	stats, err := h.pomodoroService.GetStats(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
