package serviceimpl

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskflow/domain/dto"
	"taskflow/domain/models"
	"taskflow/domain/policy"
	"taskflow/domain/services"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func TestTaskService_CreateTask_WritesOneLog(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	user := env.createUser(t, "alice", models.RoleUser)

	task, err := env.tasks.CreateTask(testCtx, actorFor(user), &dto.CreateTaskRequest{
		Title: "Write report",
	})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	if got := env.countLogs(t); got != 1 {
		t.Errorf("expected exactly 1 activity log, got %d", got)
	}

	var log models.ActivityLog
	if err := env.db.First(&log).Error; err != nil {
		t.Fatalf("failed to load activity log: %v", err)
	}
	if log.ActionType != models.ActionTaskCreated {
		t.Errorf("expected action %q, got %q", models.ActionTaskCreated, log.ActionType)
	}
	if log.TaskID == nil || *log.TaskID != task.ID {
		t.Errorf("log not linked to created task")
	}
	if log.UserID != user.ID {
		t.Errorf("log not attributed to creating user")
	}
}

func TestTaskService_CreateTask_DefaultStatus(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	user := env.createUser(t, "alice", models.RoleUser)

	task, err := env.tasks.CreateTask(testCtx, actorFor(user), &dto.CreateTaskRequest{
		Title: "No status given",
	})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	if task.Status != models.StatusTodo {
		t.Errorf("expected default status %q, got %q", models.StatusTodo, task.Status)
	}
}

func TestTaskService_CreateTask_InvalidStatus(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	user := env.createUser(t, "alice", models.RoleUser)

	_, err := env.tasks.CreateTask(testCtx, actorFor(user), &dto.CreateTaskRequest{
		Title:  "Bad status",
		Status: "archived",
	})
	if !errors.Is(err, services.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	if got := env.countTasks(t); got != 0 {
		t.Errorf("expected no tasks after rejected create, got %d", got)
	}
	if got := env.countLogs(t); got != 0 {
		t.Errorf("expected no logs after rejected create, got %d", got)
	}
}

func TestTaskService_CreateTask_UnknownCreator(t *testing.T) {
	env := newTestEnv(t, fixedNow)

	actor := policy.Actor{ID: uuid.New(), Role: models.RoleUser}
	_, err := env.tasks.CreateTask(testCtx, actor, &dto.CreateTaskRequest{Title: "Orphan"})
	if !errors.Is(err, services.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTaskService_UpdateTask_ForbiddenHasNoSideEffects(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)
	user := env.createUser(t, "bob", models.RoleUser)
	task := env.createTask(t, admin.ID, models.StatusTodo, fixedNow)

	title := "Hijacked"
	_, err := env.tasks.UpdateTask(testCtx, actorFor(user), task.ID, &dto.UpdateTaskRequest{
		Title: &title,
	})
	if !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	var stored models.Task
	if err := env.db.First(&stored, "id = ?", task.ID).Error; err != nil {
		t.Fatalf("failed to reload task: %v", err)
	}
	if stored.Title != task.Title {
		t.Errorf("task was modified despite forbidden update")
	}
	if got := env.countLogs(t); got != 0 {
		t.Errorf("expected no logs after forbidden update, got %d", got)
	}
}

func TestTaskService_UpdateTask_PartialFields(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)
	task := env.createTask(t, admin.ID, models.StatusInProgress, fixedNow.Add(-48*time.Hour))

	title := "Renamed"
	updated, err := env.tasks.UpdateTask(testCtx, actorFor(admin), task.ID, &dto.UpdateTaskRequest{
		Title: &title,
	})
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}

	if updated.Title != "Renamed" {
		t.Errorf("expected title %q, got %q", "Renamed", updated.Title)
	}
	if updated.Status != models.StatusInProgress {
		t.Errorf("absent status field was overwritten, got %q", updated.Status)
	}
}

func TestTaskService_UpdateTask_EmptyRequestStillLogs(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)
	task := env.createTask(t, admin.ID, models.StatusTodo, fixedNow.Add(-48*time.Hour))

	updated, err := env.tasks.UpdateTask(testCtx, actorFor(admin), task.ID, &dto.UpdateTaskRequest{})
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}

	if !updated.UpdatedAt.Equal(fixedNow) {
		t.Errorf("expected updated_at %v, got %v", fixedNow, updated.UpdatedAt)
	}
	if got := env.countLogs(t); got != 1 {
		t.Errorf("expected 1 log for empty update, got %d", got)
	}

	// the stored row must carry the clock-provided time, not wall-clock
	var stored models.Task
	if err := env.db.First(&stored, "id = ?", task.ID).Error; err != nil {
		t.Fatalf("failed to reload task: %v", err)
	}
	if !stored.UpdatedAt.Equal(fixedNow) {
		t.Errorf("stored updated_at %v, want %v", stored.UpdatedAt, fixedNow)
	}
}

func TestTaskService_UpdateTask_NotFound(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)

	_, err := env.tasks.UpdateTask(testCtx, actorFor(admin), uuid.New(), &dto.UpdateTaskRequest{})
	if !errors.Is(err, services.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_DeleteTask_WritesLogThenRemovesRow(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)
	task := env.createTask(t, admin.ID, models.StatusDone, fixedNow)

	if err := env.tasks.DeleteTask(testCtx, actorFor(admin), task.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}

	if got := env.countTasks(t); got != 0 {
		t.Errorf("expected task to be removed, %d remain", got)
	}

	var log models.ActivityLog
	if err := env.db.First(&log).Error; err != nil {
		t.Fatalf("expected a deletion log to survive: %v", err)
	}
	if log.ActionType != models.ActionTaskDeleted {
		t.Errorf("expected action %q, got %q", models.ActionTaskDeleted, log.ActionType)
	}
	if log.Detail != task.Title {
		t.Errorf("expected deletion log detail %q, got %q", task.Title, log.Detail)
	}
	if log.TaskID != nil {
		t.Errorf("log still references deleted task %v, want nil", *log.TaskID)
	}
}

func TestTaskService_DeleteTask_DetachesEarlierLogs(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)

	task, err := env.tasks.CreateTask(testCtx, actorFor(admin), &dto.CreateTaskRequest{Title: "Short-lived"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	if err := env.tasks.DeleteTask(testCtx, actorFor(admin), task.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}

	var logs []models.ActivityLog
	if err := env.db.Find(&logs).Error; err != nil {
		t.Fatalf("failed to load logs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected create+delete logs, got %d", len(logs))
	}
	for _, log := range logs {
		if log.TaskID != nil {
			t.Errorf("%s log still references deleted task, want nil", log.ActionType)
		}
	}
}

func TestTaskService_DeleteTask_Forbidden(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)
	user := env.createUser(t, "bob", models.RoleUser)
	task := env.createTask(t, admin.ID, models.StatusTodo, fixedNow)

	err := env.tasks.DeleteTask(testCtx, actorFor(user), task.ID)
	if !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if got := env.countTasks(t); got != 1 {
		t.Errorf("task removed despite forbidden delete")
	}
	if got := env.countLogs(t); got != 0 {
		t.Errorf("expected no logs after forbidden delete, got %d", got)
	}
}

func TestTaskService_ResetAll_PreservesUsers(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)

	for i := 0; i < 3; i++ {
		if _, err := env.tasks.CreateTask(testCtx, actorFor(admin), &dto.CreateTaskRequest{
			Title: "Task",
		}); err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
	}

	if err := env.tasks.ResetAll(testCtx); err != nil {
		t.Fatalf("ResetAll() error = %v", err)
	}

	if got := env.countTasks(t); got != 0 {
		t.Errorf("expected 0 tasks after reset, got %d", got)
	}
	if got := env.countLogs(t); got != 0 {
		t.Errorf("expected 0 logs after reset, got %d", got)
	}

	var users int64
	if err := env.db.Model(&models.User{}).Count(&users).Error; err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if users != 1 {
		t.Errorf("expected users to survive reset, got %d", users)
	}
}

func TestTaskService_ListTasks_DefaultsToCurrentMonth(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)

	env.createTask(t, admin.ID, models.StatusTodo, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	env.createTask(t, admin.ID, models.StatusTodo, time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC))
	env.createTask(t, admin.ID, models.StatusTodo, time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC))
	env.createTask(t, admin.ID, models.StatusTodo, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	tasks, err := env.tasks.ListTasks(testCtx, 0, 0)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks in March window, got %d", len(tasks))
	}
}

func TestTaskService_ListTasks_ExplicitWindow(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)

	env.createTask(t, admin.ID, models.StatusTodo, time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC))
	env.createTask(t, admin.ID, models.StatusTodo, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	tasks, err := env.tasks.ListTasks(testCtx, 2023, 12)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task in December 2023, got %d", len(tasks))
	}
}

func TestTaskService_SeedTasks(t *testing.T) {
	env := newTestEnv(t, fixedNow)
	admin := env.createUser(t, "admin", models.RoleAdmin)

	if err := env.tasks.SeedTasks(testCtx, actorFor(admin), 25); err != nil {
		t.Fatalf("SeedTasks() error = %v", err)
	}

	if got := env.countTasks(t); got != 25 {
		t.Errorf("expected 25 seeded tasks, got %d", got)
	}
	if got := env.countLogs(t); got != 25 {
		t.Errorf("expected 25 creation logs, got %d", got)
	}

	var tasks []*models.Task
	if err := env.db.Find(&tasks).Error; err != nil {
		t.Fatalf("failed to load seeded tasks: %v", err)
	}
	for _, task := range tasks {
		if !models.ValidStatus(task.Status) {
			t.Errorf("seeded task has invalid status %q", task.Status)
		}
		if task.CreatedAt.Year() < 2023 || task.CreatedAt.Year() > 2025 {
			t.Errorf("seeded task created_at outside 2023-2025: %v", task.CreatedAt)
		}
	}
}

func TestTaskService_SeedTasks_NoUsers(t *testing.T) {
	env := newTestEnv(t, fixedNow)

	actor := policy.Actor{ID: uuid.New(), Role: models.RoleAdmin}
	err := env.tasks.SeedTasks(testCtx, actor, 5)
	if !errors.Is(err, services.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound with empty user table, got %v", err)
	}
}

func TestTaskService_GetTask_NotFound(t *testing.T) {
	env := newTestEnv(t, fixedNow)

	_, err := env.tasks.GetTask(testCtx, uuid.New())
	if !errors.Is(err, services.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
