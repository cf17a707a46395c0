package services

import (
	"context"

	"taskflow/domain/dto"
)

// KPIService derives read-only aggregates from stored tasks. Zero
// year/month arguments default to the current calendar month, resolved at
// call time from the injected clock.
type KPIService interface {
	MonthlyStatusBreakdown(ctx context.Context, year, month int) ([]dto.StatusCountResponse, error)
	MonthlyByAssignee(ctx context.Context, year, month int) (*dto.ByAssigneeResponse, error)
	MonthlyTrend(ctx context.Context) ([]dto.TrendPointResponse, error)
	CompletionRate(ctx context.Context, year, month int) (*dto.CompletionRateResponse, error)
}
