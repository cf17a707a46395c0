package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskflow/domain/services"
	"taskflow/pkg/logger"
	"taskflow/pkg/utils"
)

type KPIHandler struct {
	kpiService services.KPIService
}

func NewKPIHandler(kpiService services.KPIService) *KPIHandler {
	return &KPIHandler{
		kpiService: kpiService,
	}
}

func parseWindow(c *fiber.Ctx) (int, int, bool) {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year < 0 || month < 0 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}

func (h *KPIHandler) Monthly(c *fiber.Ctx) error {
	ctx := c.UserContext()

	year, month, ok := parseWindow(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid year/month parameters")
	}

	breakdown, err := h.kpiService.MonthlyStatusBreakdown(ctx, year, month)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compute monthly KPI", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, breakdown)
}

func (h *KPIHandler) ByUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	year, month, ok := parseWindow(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid year/month parameters")
	}

	result, err := h.kpiService.MonthlyByAssignee(ctx, year, month)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compute by-user KPI", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, result)
}

func (h *KPIHandler) MonthlyTrend(c *fiber.Ctx) error {
	ctx := c.UserContext()

	trend, err := h.kpiService.MonthlyTrend(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compute monthly trend", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, trend)
}

func (h *KPIHandler) CompletionRate(c *fiber.Ctx) error {
	ctx := c.UserContext()

	year, month, ok := parseWindow(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid year/month parameters")
	}

	result, err := h.kpiService.CompletionRate(ctx, year, month)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compute completion rate", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, result)
}
