// Package policy holds the authorization rules for task mutations as pure
// functions, independent of persistence and transport.
package policy

import (
	"github.com/google/uuid"

	"taskflow/domain/models"
)

// Actor is the authenticated identity performing an operation.
type Actor struct {
	ID   uuid.UUID
	Role string
}

// CanMutate reports whether the actor may update the task.
// Only admins may mutate tasks, regardless of ownership.
func CanMutate(actor Actor, task *models.Task) bool {
	return actor.Role == models.RoleAdmin
}

// CanDelete reports whether the actor may delete the task.
func CanDelete(actor Actor, task *models.Task) bool {
	return actor.Role == models.RoleAdmin
}
