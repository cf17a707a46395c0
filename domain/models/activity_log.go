package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionTaskCreated = "task_created"
	ActionTaskUpdated = "task_updated"
	ActionTaskDeleted = "task_deleted"
)

// ActivityLog is the append-only audit record. Exactly one row is written
// per task mutation, inside the same transaction as the mutation itself.
// TaskID is nulled inside the delete transaction when the task row is
// removed (the FK constraint below backs this up on postgres), so a log
// never points at a task that no longer exists.
type ActivityLog struct {
	ID         uuid.UUID  `gorm:"primaryKey;type:uuid"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	TaskID     *uuid.UUID `gorm:"type:uuid;index"`
	ActionType string     `gorm:"not null"` // task_created, task_updated, task_deleted
	Detail     string
	CreatedAt  time.Time `gorm:"index"`

	User *User `gorm:"foreignKey:UserID"`
	Task *Task `gorm:"foreignKey:TaskID;constraint:OnDelete:SET NULL"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
