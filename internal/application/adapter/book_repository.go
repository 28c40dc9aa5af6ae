// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/domain/entity"
)

// BookRepository defines the interface for book persistence operations.
// Finders take an explicit includeDeleted flag: soft-deleted books are
// excluded unless the caller opts in, visibly, at the call site.
type BookRepository interface {
	// Create creates a new book in the database.
	Create(ctx context.Context, book *entity.Book) error

	// FindByID retrieves a book by its ID.
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*entity.Book, error)

	// FindByMember retrieves all books the user owns or is a member of.
	FindByMember(ctx context.Context, userID uuid.UUID, includeDeleted bool) ([]*entity.Book, error)

	// FindByOwner retrieves all books owned by the user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, includeDeleted bool) ([]*entity.Book, error)

	// FindDeletedBefore retrieves soft-deleted books whose deletedAt is at or
	// before the cutoff. Used by the purge sweep.
	FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]*entity.Book, error)

	// Update persists the full state of an existing book.
	Update(ctx context.Context, book *entity.Book) error

	// HardDelete irreversibly removes a book row. Only the purge cascade
	// calls this.
	HardDelete(ctx context.Context, id uuid.UUID) error
}
