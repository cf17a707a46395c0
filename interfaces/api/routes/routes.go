package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskflow/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	// Health and root routes
	SetupHealthRoutes(app)

	// API version group
	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h, jwtSecret)
	SetupTaskRoutes(api, h, jwtSecret)
	SetupLogRoutes(api, h, jwtSecret)
	SetupKPIRoutes(api, h, jwtSecret)
}
