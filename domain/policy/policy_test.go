package policy

import (
	"testing"

	"github.com/google/uuid"

	"taskflow/domain/models"
)

func TestCanMutate(t *testing.T) {
	task := &models.Task{ID: uuid.New()}

	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"admin", Actor{ID: uuid.New(), Role: models.RoleAdmin}, true},
		{"regular user", Actor{ID: uuid.New(), Role: models.RoleUser}, false},
		{"empty role", Actor{ID: uuid.New()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMutate(tt.actor, task); got != tt.want {
				t.Errorf("CanMutate() = %v, want %v", got, tt.want)
			}
			if got := CanDelete(tt.actor, task); got != tt.want {
				t.Errorf("CanDelete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanMutate_NilTask(t *testing.T) {
	// policy is evaluated before the task is loaded, so nil must be safe
	admin := Actor{ID: uuid.New(), Role: models.RoleAdmin}
	if !CanMutate(admin, nil) {
		t.Error("admin should be allowed to mutate regardless of task")
	}
	user := Actor{ID: uuid.New(), Role: models.RoleUser}
	if CanDelete(user, nil) {
		t.Error("regular user should never be allowed to delete")
	}
}
