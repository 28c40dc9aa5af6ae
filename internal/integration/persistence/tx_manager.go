// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/moneybook/backend/internal/application/adapter"
)

type txKey struct{}

// dbFromContext returns the transaction bound to ctx, or the fallback
// handle. Repositories call this on every operation so they transparently
// join an enclosing transaction.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback
}

// txManager implements adapter.TxManager on gorm.
type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager instance.
func NewTxManager(db *gorm.DB) adapter.TxManager {
	return &txManager{db: db}
}

// WithinTransaction runs fn inside a database transaction. Nested calls
// join the transaction already bound to the context instead of opening a
// second one, so composed cascades stay a single atomic unit.
func (m *txManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
