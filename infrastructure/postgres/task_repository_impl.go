package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow/domain/models"
	"taskflow/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return session(ctx, r.db).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := session(ctx, r.db).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	// Save writes every column, which is what the service wants after it
	// has applied the partial update in memory (cleared pointers included).
	return session(ctx, r.db).Save(task).Error
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return session(ctx, r.db).Where("id = ?", id).Delete(&models.Task{}).Error
}

func (r *TaskRepositoryImpl) DeleteAll(ctx context.Context) error {
	return session(ctx, r.db).Where("1 = 1").Delete(&models.Task{}).Error
}

func (r *TaskRepositoryImpl) ListByCreatedRange(ctx context.Context, start, end time.Time) ([]*models.Task, error) {
	var tasks []*models.Task
	err := session(ctx, r.db).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

// ==================== Aggregates ====================

func (r *TaskRepositoryImpl) CountByCreatedRange(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := session(ctx, r.db).
		Model(&models.Task{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) CountByStatusInRange(ctx context.Context, status string, start, end time.Time) (int64, error) {
	var count int64
	err := session(ctx, r.db).
		Model(&models.Task{}).
		Where("status = ? AND created_at >= ? AND created_at < ?", status, start, end).
		Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) GroupByStatus(ctx context.Context, start, end time.Time) ([]repositories.StatusCount, error) {
	var rows []repositories.StatusCount
	err := session(ctx, r.db).
		Model(&models.Task{}).
		Select("status, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *TaskRepositoryImpl) GroupByAssignee(ctx context.Context, start, end time.Time) ([]repositories.AssigneeCount, error) {
	var rows []repositories.AssigneeCount
	err := session(ctx, r.db).
		Model(&models.Task{}).
		Select("assignee_id, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("assignee_id").
		Scan(&rows).Error
	return rows, err
}

func (r *TaskRepositoryImpl) ListCreationTimes(ctx context.Context) ([]time.Time, error) {
	var times []time.Time
	err := session(ctx, r.db).
		Model(&models.Task{}).
		Order("created_at ASC").
		Pluck("created_at", &times).Error
	return times, err
}
