package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskflow/domain/dto"
	"taskflow/domain/services"
	"taskflow/pkg/logger"
	"taskflow/pkg/utils"
)

type ActivityHandler struct {
	activityService services.ActivityService
}

func NewActivityHandler(activityService services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

func (h *ActivityHandler) GetLogs(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var taskID *uuid.UUID
	if raw := c.Query("task_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid task_id parameter")
		}
		taskID = &id
	}

	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if month < 0 || month > 12 {
		return utils.BadRequestResponse(c, "Invalid month parameter")
	}

	logs, err := h.activityService.Query(ctx, taskID, year, month)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to query activity logs", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.LogsToLogResponses(logs))
}

func (h *ActivityHandler) GetLogsByTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	logs, err := h.activityService.QueryByTask(ctx, taskID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to query task logs", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.LogsToLogResponses(logs))
}
