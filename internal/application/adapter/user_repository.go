// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*entity.User, error)

	// FindByEmail retrieves a user by email, case-insensitively.
	FindByEmail(ctx context.Context, email string, includeDeleted bool) (*entity.User, error)

	// FindDeletedBefore retrieves soft-deleted users whose deletedAt is at or
	// before the cutoff. Used by the purge sweep.
	FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]*entity.User, error)

	// Update persists the state of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// ExistsByEmail checks if a user with the given email exists, case-insensitively.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// HardDelete irreversibly removes a user row. Only the purge cascade
	// calls this.
	HardDelete(ctx context.Context, id uuid.UUID) error
}
