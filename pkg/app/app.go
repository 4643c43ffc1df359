// pkg/app/app.go
package app

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tszwong/notizen-api/interfaces/api/routes"
	"github.com/tszwong/notizen-api/interfaces/websocket"
	"github.com/tszwong/notizen-api/pkg/di"
)

// SetupApp creates and configures the Fiber app
func SetupApp(container *di.Container) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Requested-With",
		ExposeHeaders:    "Content-Length,Content-Type",
		AllowCredentials: false,
		MaxAge:           86400,
	}))
	app.Use(compress.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Notizen API",
			"status":    "online",
			"time":      time.Now().Format(time.RFC3339),
			"websocket": container.WebSocketHub.GetStats(),
			"editors":   container.EditorManager.Count(),
		})
	})

	routes.SetupRoutes(
		app,
		container.AuthMiddleware,
		container.UserHandler,
		container.PreferenceHandler,
		container.NoteHandler,
		container.ListHandler,
		container.TagHandler,
		container.AIHandler,
		container.ActivityHandler,
		container.StatsHandler,
		container.PomodoroHandler,
		container.FileHandler,
	)

	websocket.RegisterWebSocketRoutes(app, container.WebSocketHub, container.AuthMiddleware.Protected())

	return app
}
