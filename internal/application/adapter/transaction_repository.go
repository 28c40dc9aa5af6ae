// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	BookID     uuid.UUID
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*entity.Transaction, error)

	// FindByAccount retrieves all transactions referencing the account.
	// Results come from a single query so balance computation always sees
	// one consistent snapshot.
	FindByAccount(ctx context.Context, accountID uuid.UUID, includeDeleted bool) ([]*entity.Transaction, error)

	// FindByFilter retrieves the non-deleted transactions of a book matching
	// the filter, in one consistent snapshot.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update persists the state of an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// HardDeleteByBook irreversibly removes all transaction rows of a book.
	// Only the purge cascade calls this.
	HardDeleteByBook(ctx context.Context, bookID uuid.UUID) error
}
