package serviceimpl

import (
	"context"

	"github.com/google/uuid"

	"taskflow/domain/models"
	"taskflow/domain/repositories"
	"taskflow/domain/services"
	"taskflow/pkg/clock"
)

type ActivityServiceImpl struct {
	logRepo repositories.ActivityLogRepository
	clk     clock.Clock
}

func NewActivityService(logRepo repositories.ActivityLogRepository, clk clock.Clock) services.ActivityService {
	return &ActivityServiceImpl{
		logRepo: logRepo,
		clk:     clk,
	}
}

func (s *ActivityServiceImpl) Query(ctx context.Context, taskID *uuid.UUID, year, month int) ([]*models.ActivityLog, error) {
	// Task scope wins over the month window: per-task history is unbounded.
	if taskID != nil {
		return s.logRepo.ListByTask(ctx, *taskID)
	}

	year, month = resolveWindow(s.clk, year, month)
	start, end := monthRange(year, month)
	return s.logRepo.ListByCreatedRange(ctx, start, end)
}

func (s *ActivityServiceImpl) QueryByTask(ctx context.Context, taskID uuid.UUID) ([]*models.ActivityLog, error) {
	return s.logRepo.ListByTask(ctx, taskID)
}
