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

// RemoveMemberInput represents the input for removing a member from a book.
type RemoveMemberInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
	UserID      uuid.UUID
}

// RemoveMemberOutput represents the output of removing a member.
type RemoveMemberOutput struct {
	Book *entity.Book
}

// RemoveMemberUseCase handles removing a member and their role grant.
type RemoveMemberUseCase struct {
	bookRepo adapter.BookRepository
	clock    adapter.Clock
}

// NewRemoveMemberUseCase creates a new RemoveMemberUseCase instance.
func NewRemoveMemberUseCase(bookRepo adapter.BookRepository, clock adapter.Clock) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{
		bookRepo: bookRepo,
		clock:    clock,
	}
}

// Execute removes the member. Requires the admin role; the owner cannot be
// removed from their own book.
func (uc *RemoveMemberUseCase) Execute(ctx context.Context, input RemoveMemberInput) (*RemoveMemberOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, false)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpManageMembers); err != nil {
		return nil, err
	}

	if input.UserID == book.OwnerID {
		return nil, domainerror.NewBookError(
			domainerror.KindConflict,
			domainerror.ErrCodeCannotGrantOwner,
			"the owner cannot be removed; transfer ownership instead",
			domainerror.ErrCannotGrantOwner,
		)
	}

	if !book.IsMember(input.UserID) {
		return nil, domainerror.NewBookError(
			domainerror.KindNotFound,
			domainerror.ErrCodeBookMemberNotFound,
			"member not found in this book",
			domainerror.ErrBookMemberNotFound,
		)
	}

	book.RemoveMember(input.UserID)
	book.UpdatedAt = uc.clock.Now()

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}

	return &RemoveMemberOutput{Book: book}, nil
}
