// interfaces/api/routes/file_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/interfaces/api/handler"
)

// SetupFileRoutes mounts the upload routes
func SetupFileRoutes(router fiber.Router, fileHandler *handler.FileHandler, protected fiber.Handler) {
	files := router.Group("/files")
	files.Use(protected)

	files.Post("/images", fileHandler.UploadImage)
	files.Delete("/:id", fileHandler.DeleteAttachment)
}
