// interfaces/api/routes/user_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/interfaces/api/handler"
)

// SetupUserRoutes mounts the profile and preference routes
func SetupUserRoutes(router fiber.Router, userHandler *handler.UserHandler, preferenceHandler *handler.PreferenceHandler, protected fiber.Handler) {
	users := router.Group("/users")
	users.Use(protected)

	users.Get("/me", userHandler.Me)
	users.Post("/signout", userHandler.SignOut)

	users.Get("/me/preferences/last-note", preferenceHandler.GetLastNote)
	users.Put("/me/preferences/last-note", preferenceHandler.SetLastNote)
	users.Delete("/me/preferences/last-note", preferenceHandler.ClearLastNote)
}
