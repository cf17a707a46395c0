package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskflow/interfaces/api/handlers"
	"taskflow/interfaces/api/middleware"
)

func SetupLogRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	logs := api.Group("/logs", middleware.Protected(jwtSecret))

	logs.Get("/", h.ActivityHandler.GetLogs)
	logs.Get("/by-task/:task_id", h.ActivityHandler.GetLogsByTask)
}
