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

// InviteMemberInput represents the input for inviting a user to a book.
type InviteMemberInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
	UserID      uuid.UUID
	Role        entity.Role
}

// InviteMemberOutput represents the output of inviting a member.
type InviteMemberOutput struct {
	Book *entity.Book
}

// InviteMemberUseCase adds a user to a book with a role grant.
type InviteMemberUseCase struct {
	bookRepo adapter.BookRepository
	userRepo adapter.UserRepository
	clock    adapter.Clock
}

// NewInviteMemberUseCase creates a new InviteMemberUseCase instance.
func NewInviteMemberUseCase(bookRepo adapter.BookRepository, userRepo adapter.UserRepository, clock adapter.Clock) *InviteMemberUseCase {
	return &InviteMemberUseCase{
		bookRepo: bookRepo,
		userRepo: userRepo,
		clock:    clock,
	}
}

// Execute invites the user. Requires the admin role; the invited user must be
// a live registered user and not already a member.
func (uc *InviteMemberUseCase) Execute(ctx context.Context, input InviteMemberInput) (*InviteMemberOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, false)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpManageMembers); err != nil {
		return nil, err
	}

	if !input.Role.IsAssignable() {
		return nil, domainerror.NewBookError(
			domainerror.KindValidation,
			domainerror.ErrCodeInvalidRole,
			"role must be 'admin', 'editor' or 'viewer'",
			domainerror.ErrInvalidRole,
		)
	}

	if book.IsMember(input.UserID) {
		return nil, domainerror.NewBookError(
			domainerror.KindConflict,
			domainerror.ErrCodeUserAlreadyBookMember,
			"user is already a member of this book",
			domainerror.ErrUserAlreadyBookMember,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to look up invited user: %w", err)
	}
	if user == nil {
		return nil, domainerror.NewUserError(
			domainerror.KindNotFound,
			domainerror.ErrCodeUserNotFound,
			"invited user not found",
			domainerror.ErrUserNotFound,
		)
	}

	now := uc.clock.Now()
	book.AddMember(input.UserID)
	book.MemberPermissions = append(book.MemberPermissions, entity.MemberPermission{
		UserID:    input.UserID,
		Role:      input.Role,
		GrantedAt: now,
		GrantedBy: input.RequesterID,
	})
	book.InviteHistory = append(book.InviteHistory, entity.InviteRecord{
		InvitedBy:   input.RequesterID,
		InvitedUser: input.UserID,
		Date:        now,
		Role:        input.Role,
	})
	book.UpdatedAt = now

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to invite member: %w", err)
	}

	return &InviteMemberOutput{Book: book}, nil
}
