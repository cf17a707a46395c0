package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	AssigneeID  *uuid.UUID `json:"assigneeId" validate:"omitempty"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
}

// UpdateTaskRequest carries partial updates. Pointer fields distinguish
// "absent" from "set to zero value": only non-nil fields are applied.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	Status      *string    `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	AssigneeID  *uuid.UUID `json:"assigneeId" validate:"omitempty"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
}

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	AssigneeID  *uuid.UUID `json:"assigneeId"`
	CreatorID   uuid.UUID  `json:"creatorId"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type TaskListRequest struct {
	Year  int `query:"year" validate:"omitempty,min=2000,max=2100"`
	Month int `query:"month" validate:"omitempty,min=1,max=12"`
}
