// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/domain/entity"
)

// TagRepository defines the interface for tag persistence operations.
type TagRepository interface {
	// Create creates a new tag in the database.
	Create(ctx context.Context, tag *entity.Tag) error

	// FindByID retrieves a tag by its ID.
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*entity.Tag, error)

	// FindByBook retrieves all tags of a book.
	FindByBook(ctx context.Context, bookID uuid.UUID, includeDeleted bool) ([]*entity.Tag, error)

	// Update persists the state of an existing tag.
	Update(ctx context.Context, tag *entity.Tag) error

	// HardDeleteByBook irreversibly removes all tag rows of a book.
	HardDeleteByBook(ctx context.Context, bookID uuid.UUID) error
}
