package dto

import "github.com/google/uuid"

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type AssigneeCountResponse struct {
	User  *uuid.UUID `json:"user"`
	Count int64      `json:"count"`
}

type ByAssigneeResponse struct {
	Year  int                     `json:"year"`
	Month int                     `json:"month"`
	Data  []AssigneeCountResponse `json:"data"`
}

type TrendPointResponse struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

// CompletionRateResponse always carries all three statuses in StatusCounts,
// zero-filled, unlike the sparse monthly breakdown.
type CompletionRateResponse struct {
	Year           int              `json:"year"`
	Month          int              `json:"month"`
	CompletionRate float64          `json:"completion_rate"`
	Done           int64            `json:"done"`
	Total          int64            `json:"total"`
	StatusCounts   map[string]int64 `json:"status_counts"`
}
