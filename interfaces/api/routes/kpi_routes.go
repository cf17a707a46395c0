package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskflow/interfaces/api/handlers"
	"taskflow/interfaces/api/middleware"
)

func SetupKPIRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	kpi := api.Group("/kpi", middleware.Protected(jwtSecret))

	kpi.Get("/monthly", h.KPIHandler.Monthly)
	kpi.Get("/by-user", h.KPIHandler.ByUser)
	kpi.Get("/monthly-trend", h.KPIHandler.MonthlyTrend)
	kpi.Get("/completion-rate", h.KPIHandler.CompletionRate)
}
