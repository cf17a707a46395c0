package services

import (
	"context"

	"github.com/google/uuid"

	"taskflow/domain/models"
)

type ActivityService interface {
	// Query returns logs newest first. A non-nil taskID scopes to that task
	// and ignores the window; otherwise the calendar month applies, with
	// zero year/month defaulting to the current month at call time.
	Query(ctx context.Context, taskID *uuid.UUID, year, month int) ([]*models.ActivityLog, error)
	QueryByTask(ctx context.Context, taskID uuid.UUID) ([]*models.ActivityLog, error)
}
