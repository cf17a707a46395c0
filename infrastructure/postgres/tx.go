package postgres

import (
	"context"

	"gorm.io/gorm"

	"taskflow/domain/repositories"
)

type txContextKey struct{}

// TxManager implements repositories.UnitOfWork over a gorm transaction.
// The transaction handle travels in the context, so every repository built
// on the same *gorm.DB joins it via session().
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) repositories.UnitOfWork {
	return &TxManager{db: db}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// session returns the transaction from ctx when inside UnitOfWork.Do,
// otherwise the plain connection.
func session(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
