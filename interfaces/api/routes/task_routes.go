package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskflow/interfaces/api/handlers"
	"taskflow/interfaces/api/middleware"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	tasks := api.Group("/tasks", middleware.Protected(jwtSecret))

	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/", h.TaskHandler.ListTasks)

	// Registered before /:id so "reset" is not captured as a task ID.
	tasks.Delete("/reset", middleware.AdminOnly(), h.TaskHandler.ResetAll)

	tasks.Post("/seed/:count", middleware.AdminOnly(), h.TaskHandler.SeedTasks)

	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Put("/:id", middleware.AdminOnly(), h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", middleware.AdminOnly(), h.TaskHandler.DeleteTask)
}
