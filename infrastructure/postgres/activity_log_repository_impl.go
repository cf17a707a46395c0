package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow/domain/models"
	"taskflow/domain/repositories"
)

type ActivityLogRepositoryImpl struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) repositories.ActivityLogRepository {
	return &ActivityLogRepositoryImpl{db: db}
}

func (r *ActivityLogRepositoryImpl) Create(ctx context.Context, log *models.ActivityLog) error {
	return session(ctx, r.db).Create(log).Error
}

func (r *ActivityLogRepositoryImpl) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*models.ActivityLog, error) {
	var logs []*models.ActivityLog
	err := session(ctx, r.db).
		Where("task_id = ?", taskID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

func (r *ActivityLogRepositoryImpl) ListByCreatedRange(ctx context.Context, start, end time.Time) ([]*models.ActivityLog, error) {
	var logs []*models.ActivityLog
	err := session(ctx, r.db).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

func (r *ActivityLogRepositoryImpl) DetachTask(ctx context.Context, taskID uuid.UUID) error {
	return session(ctx, r.db).
		Model(&models.ActivityLog{}).
		Where("task_id = ?", taskID).
		Update("task_id", nil).Error
}

func (r *ActivityLogRepositoryImpl) DeleteAll(ctx context.Context) error {
	return session(ctx, r.db).Where("1 = 1").Delete(&models.ActivityLog{}).Error
}
