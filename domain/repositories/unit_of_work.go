package repositories

import "context"

// UnitOfWork runs fn inside a single atomic transaction. Repository calls
// made with the context passed to fn join that transaction, so a task
// mutation and its activity log append commit or roll back together.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
