package serviceimpl

import (
	"context"

	"github.com/google/uuid"

	"taskflow/domain/dto"
	"taskflow/domain/models"
	"taskflow/domain/policy"
	"taskflow/domain/repositories"
	"taskflow/domain/services"
	"taskflow/pkg/clock"
	"taskflow/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	logRepo  repositories.ActivityLogRepository
	userRepo repositories.UserRepository
	uow      repositories.UnitOfWork
	clk      clock.Clock
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	logRepo repositories.ActivityLogRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	clk clock.Clock,
) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		logRepo:  logRepo,
		userRepo: userRepo,
		uow:      uow,
		clk:      clk,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, actor policy.Actor, req *dto.CreateTaskRequest) (*models.Task, error) {
	status := req.Status
	if status == "" {
		status = models.StatusTodo
	}
	if !models.ValidStatus(status) {
		logger.WarnContext(ctx, "Rejected invalid task status", "status", status)
		return nil, services.ErrInvalidStatus
	}

	if _, err := s.userRepo.GetByID(ctx, actor.ID); err != nil {
		logger.WarnContext(ctx, "Creator not found", "user_id", actor.ID)
		return nil, services.ErrUserNotFound
	}

	now := s.clk.Now()
	task := &models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		AssigneeID:  req.AssigneeID,
		CreatorID:   actor.ID,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		if err := s.taskRepo.Create(ctx, task); err != nil {
			return err
		}
		return s.logRepo.Create(ctx, &models.ActivityLog{
			ID:         uuid.New(),
			UserID:     actor.ID,
			TaskID:     &task.ID,
			ActionType: models.ActionTaskCreated,
			Detail:     task.Title,
			CreatedAt:  now,
		})
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", actor.ID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", actor.ID)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, services.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, year, month int) ([]*models.Task, error) {
	year, month = resolveWindow(s.clk, year, month)
	start, end := monthRange(year, month)
	return s.taskRepo.ListByCreatedRange(ctx, start, end)
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, actor policy.Actor, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	// Authorization is decided before anything is loaded or written, so a
	// forbidden call has no observable side effect.
	if !policy.CanMutate(actor, nil) {
		logger.WarnContext(ctx, "Task update forbidden", "task_id", taskID, "user_id", actor.ID)
		return nil, services.ErrForbidden
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for update", "task_id", taskID)
		return nil, services.ErrTaskNotFound
	}

	if req.Status != nil && !models.ValidStatus(*req.Status) {
		return nil, services.ErrInvalidStatus
	}

	// Only fields present in the request are applied; absent fields keep
	// their stored values.
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.AssigneeID != nil {
		task.AssigneeID = req.AssigneeID
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	now := s.clk.Now()
	task.UpdatedAt = now

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		if err := s.taskRepo.Update(ctx, task); err != nil {
			return err
		}
		return s.logRepo.Create(ctx, &models.ActivityLog{
			ID:         uuid.New(),
			UserID:     actor.ID,
			TaskID:     &task.ID,
			ActionType: models.ActionTaskUpdated,
			Detail:     task.Title,
			CreatedAt:  now,
		})
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "user_id", actor.ID)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, actor policy.Actor, taskID uuid.UUID) error {
	if !policy.CanDelete(actor, nil) {
		logger.WarnContext(ctx, "Task deletion forbidden", "task_id", taskID, "user_id", actor.ID)
		return services.ErrForbidden
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for deletion", "task_id", taskID)
		return services.ErrTaskNotFound
	}

	// The log goes in first so it references a task that still exists at
	// write time; after the row is removed, every log pointing at it is
	// nulled explicitly so no log ever references a missing task, whatever
	// the driver does with the FK constraint. All in one transaction.
	err = s.uow.Do(ctx, func(ctx context.Context) error {
		if err := s.logRepo.Create(ctx, &models.ActivityLog{
			ID:         uuid.New(),
			UserID:     actor.ID,
			TaskID:     &task.ID,
			ActionType: models.ActionTaskDeleted,
			Detail:     task.Title,
			CreatedAt:  s.clk.Now(),
		}); err != nil {
			return err
		}
		if err := s.taskRepo.Delete(ctx, task.ID); err != nil {
			return err
		}
		return s.logRepo.DetachTask(ctx, task.ID)
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", actor.ID)

	return nil
}

func (s *TaskServiceImpl) ResetAll(ctx context.Context) error {
	// Logs reference tasks, so they go first. Full wipe; deliberately no
	// per-row logging. Users are untouched.
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		if err := s.logRepo.DeleteAll(ctx); err != nil {
			return err
		}
		return s.taskRepo.DeleteAll(ctx)
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to reset tasks and logs", "error", err)
		return err
	}

	logger.Info("All tasks and activity logs deleted")

	return nil
}
