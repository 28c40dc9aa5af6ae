// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/domain/entity"
)

// PersonRepository defines the interface for person persistence operations.
type PersonRepository interface {
	// Create creates a new person in the database.
	Create(ctx context.Context, person *entity.Person) error

	// FindByID retrieves a person by its ID.
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*entity.Person, error)

	// FindByBook retrieves all persons of a book.
	FindByBook(ctx context.Context, bookID uuid.UUID, includeDeleted bool) ([]*entity.Person, error)

	// Update persists the state of an existing person.
	Update(ctx context.Context, person *entity.Person) error

	// HardDeleteByBook irreversibly removes all person rows of a book.
	HardDeleteByBook(ctx context.Context, bookID uuid.UUID) error
}
