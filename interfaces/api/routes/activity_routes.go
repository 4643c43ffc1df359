// interfaces/api/routes/activity_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/interfaces/api/handler"
)

// SetupActivityRoutes mounts the heatmap and counter routes
func SetupActivityRoutes(router fiber.Router, activityHandler *handler.ActivityHandler, statsHandler *handler.StatsHandler, protected fiber.Handler) {
	activity := router.Group("/activity")
	activity.Use(protected)

	activity.Get("/heatmap", activityHandler.GetHeatmap)
	activity.Post("/today", activityHandler.RecordToday)

	stats := router.Group("/stats")
	stats.Use(protected)

	stats.Get("/", statsHandler.GetStats)
}
