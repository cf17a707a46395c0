package serviceimpl

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"taskflow/domain/models"
	"taskflow/domain/policy"
	"taskflow/domain/services"
	"taskflow/pkg/logger"
)

// SeedTasks bulk-generates demo tasks spread uniformly over 2023-2025.
// Tasks landing in the current month get a realistic in-flight status mix;
// historical months are almost entirely done. Each seeded task gets its
// task_created log, all inside one transaction.
func (s *TaskServiceImpl) SeedTasks(ctx context.Context, actor policy.Actor, count int) error {
	userIDs, err := s.userRepo.ListIDs(ctx)
	if err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return services.ErrUserNotFound
	}

	now := s.clk.Now()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	totalSeconds := int64(end.Sub(start) / time.Second)

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		for i := 0; i < count; i++ {
			createdAt := start.Add(time.Duration(rand.Int63n(totalSeconds)) * time.Second)

			var status string
			r := rand.Float64()
			if createdAt.Year() == now.Year() && createdAt.Month() == now.Month() {
				// current month: roughly 40% todo, 30% in progress, 30% done
				switch {
				case r < 0.4:
					status = models.StatusTodo
				case r < 0.7:
					status = models.StatusInProgress
				default:
					status = models.StatusDone
				}
			} else {
				// history: almost everything finished
				switch {
				case r < 0.05:
					status = models.StatusTodo
				case r < 0.10:
					status = models.StatusInProgress
				default:
					status = models.StatusDone
				}
			}

			dueDate := createdAt.AddDate(0, 0, 1+rand.Intn(40))
			assignee := userIDs[rand.Intn(len(userIDs))]

			task := &models.Task{
				ID:          uuid.New(),
				Title:       fmt.Sprintf("Seed Task %d", i),
				Description: "Auto-generated",
				Status:      status,
				AssigneeID:  &assignee,
				CreatorID:   actor.ID,
				DueDate:     &dueDate,
				CreatedAt:   createdAt,
				UpdatedAt:   createdAt,
			}
			if err := s.taskRepo.Create(ctx, task); err != nil {
				return err
			}

			if err := s.logRepo.Create(ctx, &models.ActivityLog{
				ID:         uuid.New(),
				UserID:     actor.ID,
				TaskID:     &task.ID,
				ActionType: models.ActionTaskCreated,
				Detail:     "Seeded task",
				CreatedAt:  createdAt,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to seed tasks", "count", count, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Seeded tasks", "count", count, "user_id", actor.ID)

	return nil
}
