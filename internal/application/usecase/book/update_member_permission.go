// Package book contains book-related use cases.
package book

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/domain/permission"
)

// UpdateMemberPermissionInput represents the input for changing a member's role.
type UpdateMemberPermissionInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
	UserID      uuid.UUID
	NewRole     entity.Role
}

// UpdateMemberPermissionOutput represents the output of changing a member's role.
type UpdateMemberPermissionOutput struct {
	Book *entity.Book
}

// UpdateMemberPermissionUseCase handles changing a member's role grant.
// Role checks are advisory per request: two concurrent changes on the same
// member resolve to last write wins, with no merge.
type UpdateMemberPermissionUseCase struct {
	bookRepo adapter.BookRepository
	clock    adapter.Clock
}

// NewUpdateMemberPermissionUseCase creates a new UpdateMemberPermissionUseCase instance.
func NewUpdateMemberPermissionUseCase(bookRepo adapter.BookRepository, clock adapter.Clock) *UpdateMemberPermissionUseCase {
	return &UpdateMemberPermissionUseCase{
		bookRepo: bookRepo,
		clock:    clock,
	}
}

// Execute changes the member's role. Requires the admin role. The owner has
// no stored grant; ownership changes only via transfer.
func (uc *UpdateMemberPermissionUseCase) Execute(ctx context.Context, input UpdateMemberPermissionInput) (*UpdateMemberPermissionOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, false)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpManageMembers); err != nil {
		return nil, err
	}

	if !input.NewRole.IsAssignable() {
		return nil, domainerror.NewBookError(
			domainerror.KindValidation,
			domainerror.ErrCodeInvalidRole,
			"role must be 'admin', 'editor' or 'viewer'",
			domainerror.ErrInvalidRole,
		)
	}

	if input.UserID == book.OwnerID {
		return nil, domainerror.NewBookError(
			domainerror.KindConflict,
			domainerror.ErrCodeCannotGrantOwner,
			"the owner's role cannot be changed; transfer ownership instead",
			domainerror.ErrCannotGrantOwner,
		)
	}

	perm := book.PermissionFor(input.UserID)
	if perm == nil {
		return nil, domainerror.NewBookError(
			domainerror.KindNotFound,
			domainerror.ErrCodeBookMemberNotFound,
			"member not found in this book",
			domainerror.ErrBookMemberNotFound,
		)
	}

	now := uc.clock.Now()
	perm.Role = input.NewRole
	perm.GrantedAt = now
	perm.GrantedBy = input.RequesterID
	book.UpdatedAt = now

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to update member permission: %w", err)
	}

	return &UpdateMemberPermissionOutput{Book: book}, nil
}
