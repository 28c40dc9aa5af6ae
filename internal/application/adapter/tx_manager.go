// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// TxManager runs a function inside a single storage transaction. Multi-record
// cascades (ownership transfer, user deletion, purge) execute through it so
// either every affected record observes the change or none do.
type TxManager interface {
	// WithinTransaction begins a transaction, runs fn with a context that
	// carries it, and commits on nil error or rolls back otherwise.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
