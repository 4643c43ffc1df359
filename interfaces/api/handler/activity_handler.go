// interfaces/api/handler/activity_handler.go
package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/service"
	"github.com/tszwong/notizen-api/interfaces/api/middleware"
)

type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// GetHeatmap returns the active-day map for a date range. Defaults to the
// trailing year.
func (h *ActivityHandler) GetHeatmap(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	now := time.Now()
	from := c.Query("from", now.AddDate(-1, 0, 0).Format(models.ActivityDateLayout))
	to := c.Query("to", now.Format(models.ActivityDateLayout))

	if _, err := time.Parse(models.ActivityDateLayout, from); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid from date, expected YYYY-MM-DD",
		})
	}
	if _, err := time.Parse(models.ActivityDateLayout, to); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid to date, expected YYYY-MM-DD",
		})
	}

	heatmap, err := h.activityService.GetHeatmap(userID, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    heatmap,
	})
}

// RecordToday marks the user active today.
func (h *ActivityHandler) RecordToday(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	h.activityService.RecordToday(userID)

	return c.JSON(fiber.Map{
		"success": true,
	})
}
