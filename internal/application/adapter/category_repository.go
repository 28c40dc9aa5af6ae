// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*entity.Category, error)

	// FindByBook retrieves all categories of a book.
	FindByBook(ctx context.Context, bookID uuid.UUID, includeDeleted bool) ([]*entity.Category, error)

	// Update persists the state of an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// HardDeleteByBook irreversibly removes all category rows of a book.
	HardDeleteByBook(ctx context.Context, bookID uuid.UUID) error
}
