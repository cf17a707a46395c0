package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskflow/domain/models"
	"taskflow/domain/policy"
	"taskflow/domain/services"
	"taskflow/infrastructure/postgres"
	"taskflow/pkg/clock"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Task{}, &models.ActivityLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

type testEnv struct {
	db       *gorm.DB
	tasks    services.TaskService
	activity services.ActivityService
	kpi      services.KPIService
	clk      clock.Clock
}

// newTestEnv wires the service stack against an in-memory database with a
// fixed clock so month-window defaults are deterministic.
func newTestEnv(t *testing.T, now time.Time) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	clk := clock.Fixed(now)

	taskRepo := postgres.NewTaskRepository(db)
	logRepo := postgres.NewActivityLogRepository(db)
	userRepo := postgres.NewUserRepository(db)
	uow := postgres.NewTxManager(db)

	return &testEnv{
		db:       db,
		tasks:    NewTaskService(taskRepo, logRepo, userRepo, uow, clk),
		activity: NewActivityService(logRepo, clk),
		kpi:      NewKPIService(taskRepo, clk),
		clk:      clk,
	}
}

func (e *testEnv) createUser(t *testing.T, username, role string) *models.User {
	t.Helper()

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func (e *testEnv) createTask(t *testing.T, creator uuid.UUID, status string, createdAt time.Time) *models.Task {
	t.Helper()

	task := &models.Task{
		ID:        uuid.New(),
		Title:     "Test Task",
		Status:    status,
		CreatorID: creator,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := e.db.Create(task).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

func (e *testEnv) countTasks(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(&models.Task{}).Count(&n).Error; err != nil {
		t.Fatalf("failed to count tasks: %v", err)
	}
	return n
}

func (e *testEnv) countLogs(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(&models.ActivityLog{}).Count(&n).Error; err != nil {
		t.Fatalf("failed to count logs: %v", err)
	}
	return n
}

func actorFor(user *models.User) policy.Actor {
	return policy.Actor{ID: user.ID, Role: user.Role}
}

var testCtx = context.Background()
