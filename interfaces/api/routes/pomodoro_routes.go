// interfaces/api/routes/pomodoro_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/interfaces/api/handler"
)

// SetupPomodoroRoutes mounts the focus-session routes
func SetupPomodoroRoutes(router fiber.Router, pomodoroHandler *handler.PomodoroHandler, protected fiber.Handler) {
	pomodoro := router.Group("/pomodoro")
	pomodoro.Use(protected)

	pomodoro.Post("/sessions", pomodoroHandler.StartSession)
	pomodoro.Get("/sessions", pomodoroHandler.GetSessions)
	pomodoro.Put("/sessions/:id/interrupt", pomodoroHandler.InterruptSession)
	pomodoro.Put("/sessions/:id/complete", pomodoroHandler.CompleteSession)
	pomodoro.Get("/stats", pomodoroHandler.GetStats)
}
