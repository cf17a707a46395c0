package serviceimpl

import (
	"context"
	"fmt"

	"taskflow/domain/dto"
	"taskflow/domain/models"
	"taskflow/domain/repositories"
	"taskflow/domain/services"
	"taskflow/pkg/clock"
)

// KPIServiceImpl derives aggregates from the task store. It performs no
// writes and holds no state beyond its dependencies.
type KPIServiceImpl struct {
	taskRepo repositories.TaskRepository
	clk      clock.Clock
}

func NewKPIService(taskRepo repositories.TaskRepository, clk clock.Clock) services.KPIService {
	return &KPIServiceImpl{
		taskRepo: taskRepo,
		clk:      clk,
	}
}

// MonthlyStatusBreakdown is sparse: statuses with no tasks in the window
// are absent from the result.
func (s *KPIServiceImpl) MonthlyStatusBreakdown(ctx context.Context, year, month int) ([]dto.StatusCountResponse, error) {
	year, month = resolveWindow(s.clk, year, month)
	start, end := monthRange(year, month)

	rows, err := s.taskRepo.GroupByStatus(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StatusCountResponse, len(rows))
	for i, row := range rows {
		out[i] = dto.StatusCountResponse{Status: row.Status, Count: row.Count}
	}
	return out, nil
}

func (s *KPIServiceImpl) MonthlyByAssignee(ctx context.Context, year, month int) (*dto.ByAssigneeResponse, error) {
	year, month = resolveWindow(s.clk, year, month)
	start, end := monthRange(year, month)

	rows, err := s.taskRepo.GroupByAssignee(ctx, start, end)
	if err != nil {
		return nil, err
	}

	data := make([]dto.AssigneeCountResponse, len(rows))
	for i, row := range rows {
		data[i] = dto.AssigneeCountResponse{User: row.AssigneeID, Count: row.Count}
	}
	return &dto.ByAssigneeResponse{Year: year, Month: month, Data: data}, nil
}

// MonthlyTrend spans full history: one point per calendar month that has at
// least one task, chronologically ascending. Bucketing happens here rather
// than in SQL so the query stays portable across drivers.
func (s *KPIServiceImpl) MonthlyTrend(ctx context.Context) ([]dto.TrendPointResponse, error) {
	times, err := s.taskRepo.ListCreationTimes(ctx)
	if err != nil {
		return nil, err
	}

	var out []dto.TrendPointResponse
	counts := make(map[string]int)
	for _, t := range times {
		key := fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
		if _, seen := counts[key]; !seen {
			out = append(out, dto.TrendPointResponse{Month: key})
		}
		counts[key]++
	}
	// times come back ordered ascending, so out is already chronological;
	// fill in the per-month totals.
	for i := range out {
		out[i].Count = int64(counts[out[i].Month])
	}
	return out, nil
}

// CompletionRate is dense: StatusCounts always carries all three statuses,
// zero-filled. A window with no tasks yields rate 0 by definition.
func (s *KPIServiceImpl) CompletionRate(ctx context.Context, year, month int) (*dto.CompletionRateResponse, error) {
	year, month = resolveWindow(s.clk, year, month)
	start, end := monthRange(year, month)

	total, err := s.taskRepo.CountByCreatedRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	done, err := s.taskRepo.CountByStatusInRange(ctx, models.StatusDone, start, end)
	if err != nil {
		return nil, err
	}

	rate := 0.0
	if total > 0 {
		rate = float64(done) / float64(total)
	}

	statusCounts := map[string]int64{
		models.StatusTodo:       0,
		models.StatusInProgress: 0,
		models.StatusDone:       0,
	}
	rows, err := s.taskRepo.GroupByStatus(ctx, start, end)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		statusCounts[row.Status] = row.Count
	}

	return &dto.CompletionRateResponse{
		Year:           year,
		Month:          month,
		CompletionRate: rate,
		Done:           done,
		Total:          total,
		StatusCounts:   statusCounts,
	}, nil
}
