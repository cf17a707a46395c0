package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskflow/domain/models"
)

// StatusCount is one row of a GROUP BY status aggregate.
type StatusCount struct {
	Status string
	Count  int64
}

// AssigneeCount is one row of a GROUP BY assignee_id aggregate.
// AssigneeID is nil for unassigned tasks.
type AssigneeCount struct {
	AssigneeID *uuid.UUID
	Count      int64
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error

	// ListByCreatedRange returns tasks with start <= created_at < end,
	// ordered by created_at descending.
	ListByCreatedRange(ctx context.Context, start, end time.Time) ([]*models.Task, error)

	// Aggregates for the KPI layer. All range filters are on created_at
	// with a half-open [start, end) window.
	CountByCreatedRange(ctx context.Context, start, end time.Time) (int64, error)
	CountByStatusInRange(ctx context.Context, status string, start, end time.Time) (int64, error)
	GroupByStatus(ctx context.Context, start, end time.Time) ([]StatusCount, error)
	GroupByAssignee(ctx context.Context, start, end time.Time) ([]AssigneeCount, error)
	ListCreationTimes(ctx context.Context) ([]time.Time, error)
}
