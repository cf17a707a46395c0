package serviceimpl

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"taskflow/domain/dto"
	"taskflow/domain/models"
)

func TestActivityService_Query_TaskScopeIgnoresWindow(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)

	task, err := env.tasks.CreateTask(testCtx, actorFor(admin), &dto.CreateTaskRequest{Title: "Tracked"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	// backdate the log far outside the current window
	old := fixedNow.AddDate(-1, 0, 0)
	if err := env.db.Model(&models.ActivityLog{}).Where("task_id = ?", task.ID).
		Update("created_at", old).Error; err != nil {
		t.Fatalf("failed to backdate log: %v", err)
	}

	logs, err := env.activity.Query(testCtx, &task.ID, 2024, 3)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("task-scoped query should ignore the window, got %d logs", len(logs))
	}
}

func TestActivityService_Query_MonthWindow(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)

	inWindow := &models.ActivityLog{
		ID:         uuid.New(),
		UserID:     admin.ID,
		ActionType: models.ActionTaskCreated,
		CreatedAt:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	outOfWindow := &models.ActivityLog{
		ID:         uuid.New(),
		UserID:     admin.ID,
		ActionType: models.ActionTaskCreated,
		CreatedAt:  time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	}
	if err := env.db.Create(inWindow).Error; err != nil {
		t.Fatalf("failed to create log: %v", err)
	}
	if err := env.db.Create(outOfWindow).Error; err != nil {
		t.Fatalf("failed to create log: %v", err)
	}

	logs, err := env.activity.Query(testCtx, nil, 2024, 3)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log in March 2024, got %d", len(logs))
	}
	if logs[0].ID != inWindow.ID {
		t.Errorf("wrong log returned")
	}
}

func TestActivityService_Query_DefaultsToCurrentMonth(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)

	if _, err := env.tasks.CreateTask(testCtx, actorFor(admin), &dto.CreateTaskRequest{Title: "Now"}); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	logs, err := env.activity.Query(testCtx, nil, 0, 0)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log in default window, got %d", len(logs))
	}
}

func TestActivityService_QueryByTask_NewestFirst(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)

	task, err := env.tasks.CreateTask(testCtx, actorFor(admin), &dto.CreateTaskRequest{Title: "Lifecycle"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	title := "Lifecycle v2"
	if _, err := env.tasks.UpdateTask(testCtx, actorFor(admin), task.ID, &dto.UpdateTaskRequest{
		Title: &title,
	}); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}

	logs, err := env.activity.QueryByTask(testCtx, task.ID)
	if err != nil {
		t.Fatalf("QueryByTask() error = %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs after create+update, got %d", len(logs))
	}
}
