package services

import (
	"context"

	"github.com/google/uuid"

	"taskflow/domain/dto"
	"taskflow/domain/models"
	"taskflow/domain/policy"
)

type TaskService interface {
	CreateTask(ctx context.Context, actor policy.Actor, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error)

	// ListTasks returns tasks created in the given calendar month, newest
	// first. Zero year/month default to the current month at call time.
	ListTasks(ctx context.Context, year, month int) ([]*models.Task, error)

	UpdateTask(ctx context.Context, actor policy.Actor, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, actor policy.Actor, taskID uuid.UUID) error

	// ResetAll wipes every activity log and every task. Users survive.
	ResetAll(ctx context.Context) error

	// SeedTasks generates count random tasks (with creation logs) spread
	// over 2023-2025 for dashboard demos.
	SeedTasks(ctx context.Context, actor policy.Actor, count int) error
}
