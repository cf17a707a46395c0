package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// ValidStatus reports whether s is one of the three task statuses.
func ValidStatus(s string) bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

type Task struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title       string    `gorm:"not null"`
	Description string
	Status      string     `gorm:"default:'todo';index"`
	AssigneeID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatorID   uuid.UUID  `gorm:"type:uuid;not null"`
	DueDate     *time.Time
	CreatedAt   time.Time `gorm:"index"`
	// The service stamps this from its injected clock; gorm must not
	// overwrite it with wall-clock time on save.
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`

	Assignee *User `gorm:"foreignKey:AssigneeID"`
	Creator  *User `gorm:"foreignKey:CreatorID"`
}

func (Task) TableName() string {
	return "tasks"
}
