// interfaces/api/routes/ai_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/interfaces/api/handler"
)

// SetupAIRoutes mounts the AI action endpoints. These keep their original
// top-level paths rather than living under /api/v1.
func SetupAIRoutes(app *fiber.App, aiHandler *handler.AIHandler, protected fiber.Handler) {
	app.Post("/api/summarize", protected, aiHandler.Summarize)
	app.Post("/api/extractTasks", protected, aiHandler.ExtractTasks)
}
