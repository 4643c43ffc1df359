// interfaces/api/routes/tag_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/interfaces/api/handler"
)

// SetupTagRoutes mounts the tag routes
func SetupTagRoutes(router fiber.Router, tagHandler *handler.TagHandler, protected fiber.Handler) {
	tags := router.Group("/tags")
	tags.Use(protected)

	tags.Post("/", tagHandler.CreateTag)
	tags.Get("/", tagHandler.GetTags)
	tags.Put("/:id", tagHandler.UpdateTag)
	tags.Delete("/:id", tagHandler.DeleteTag)
}
