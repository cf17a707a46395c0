package dto

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLogResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	TaskID     *uuid.UUID `json:"taskId"`
	ActionType string     `json:"actionType"`
	Detail     string     `json:"detail"`
	CreatedAt  time.Time  `json:"createdAt"`
}
