package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskflow/domain/models"
)

// ActivityLogRepository is append-and-read only. Create is called solely
// from inside task mutations; there is no update or single-row delete.
// DetachTask is the one exception: it nulls task references when the task
// row is removed, inside the same transaction.
type ActivityLogRepository interface {
	Create(ctx context.Context, log *models.ActivityLog) error
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*models.ActivityLog, error)
	ListByCreatedRange(ctx context.Context, start, end time.Time) ([]*models.ActivityLog, error)
	DetachTask(ctx context.Context, taskID uuid.UUID) error
	DeleteAll(ctx context.Context) error
}
