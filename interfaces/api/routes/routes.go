// interfaces/api/routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/interfaces/api/handler"
	"github.com/tszwong/notizen-api/interfaces/api/middleware"
)

// SetupRoutes mounts every API route of the application
func SetupRoutes(
	app *fiber.App,
	auth *middleware.AuthMiddleware,

	userHandler *handler.UserHandler,
	preferenceHandler *handler.PreferenceHandler,

	noteHandler *handler.NoteHandler,
	listHandler *handler.ListHandler,
	tagHandler *handler.TagHandler,

	aiHandler *handler.AIHandler,
	activityHandler *handler.ActivityHandler,
	statsHandler *handler.StatsHandler,
	pomodoroHandler *handler.PomodoroHandler,
	fileHandler *handler.FileHandler,
) {
	api := app.Group("/api/v1")

	// Health check route
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "API is running",
		})
	})

	protected := auth.Protected()

	SetupUserRoutes(api, userHandler, preferenceHandler, protected)
	SetupNoteRoutes(api, noteHandler, fileHandler, protected)
	SetupListRoutes(api, listHandler, protected)
	SetupTagRoutes(api, tagHandler, protected)
	SetupActivityRoutes(api, activityHandler, statsHandler, protected)
	SetupPomodoroRoutes(api, pomodoroHandler, protected)
	SetupFileRoutes(api, fileHandler, protected)

	// The AI actions keep their original top-level paths
	SetupAIRoutes(app, aiHandler, protected)
}
