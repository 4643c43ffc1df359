// interfaces/api/routes/list_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/interfaces/api/handler"
)

// SetupListRoutes mounts the to-do list routes
func SetupListRoutes(router fiber.Router, listHandler *handler.ListHandler, protected fiber.Handler) {
	lists := router.Group("/lists")
	lists.Use(protected)

	lists.Post("/", listHandler.CreateList)
	lists.Get("/", listHandler.GetLists)

	// Item operations (before /:id routes with bare methods)
	lists.Post("/:id/items", listHandler.AddItem)
	lists.Post("/:id/items/reorder", listHandler.ReorderItems)
	lists.Put("/:id/items/:itemId/toggle", listHandler.ToggleItem)
	lists.Put("/:id/items/:itemId", listHandler.UpdateItem)
	lists.Delete("/:id/items/:itemId", listHandler.DeleteItem)

	// Tag references
	lists.Put("/:id/tags/:tagId", listHandler.AddTag)
	lists.Delete("/:id/tags/:tagId", listHandler.RemoveTag)

	lists.Get("/:id", listHandler.GetList)
	lists.Put("/:id", listHandler.UpdateList)
	lists.Delete("/:id", listHandler.DeleteList)
}
