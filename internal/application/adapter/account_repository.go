// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*entity.Account, error)

	// FindByBook retrieves all accounts of a book.
	FindByBook(ctx context.Context, bookID uuid.UUID, includeDeleted bool) ([]*entity.Account, error)

	// ExistsByBookAndCurrency reports whether any non-deleted account of the
	// book references the currency code.
	ExistsByBookAndCurrency(ctx context.Context, bookID uuid.UUID, currencyCode string) (bool, error)

	// Update persists the state of an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// HardDeleteByBook irreversibly removes all account rows of a book.
	// Only the purge cascade calls this.
	HardDeleteByBook(ctx context.Context, bookID uuid.UUID) error
}
