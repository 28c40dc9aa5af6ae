// Package user contains user account and lifecycle use cases.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/application/usecase/book"
	domainerror "github.com/moneybook/backend/internal/domain/error"
)

// DeleteUserInput represents the input for soft-deleting a user account.
type DeleteUserInput struct {
	UserID uuid.UUID

	// TransferToUserID receives every live book the user owns. Required
	// whenever such books exist; ignored otherwise.
	TransferToUserID *uuid.UUID
}

// DeleteUserOutput represents the output of deleting a user.
type DeleteUserOutput struct {
	Success          bool
	TransferredBooks int
}

// DeleteUserUseCase soft-deletes a user account. Owned live books are handed
// to the transfer target and the user is removed from every other book's
// member list, all in one transaction. If any step fails nothing changes.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
	bookRepo adapter.BookRepository
	transfer *book.TransferOwnershipUseCase
	txm      adapter.TxManager
	clock    adapter.Clock
	events   adapter.EventSink
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(
	userRepo adapter.UserRepository,
	bookRepo adapter.BookRepository,
	transfer *book.TransferOwnershipUseCase,
	txm adapter.TxManager,
	clock adapter.Clock,
	events adapter.EventSink,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		bookRepo: bookRepo,
		transfer: transfer,
		txm:      txm,
		clock:    clock,
		events:   events,
	}
}

// Execute soft-deletes the user. Deleting an already-deleted user succeeds
// without touching anything.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) (*DeleteUserOutput, error) {
	var out *DeleteUserOutput

	err := uc.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := uc.userRepo.FindByID(ctx, input.UserID, true)
		if err != nil {
			return fmt.Errorf("failed to look up user: %w", err)
		}
		if user == nil {
			return domainerror.NewUserError(
				domainerror.KindNotFound,
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}

		if user.IsDeleted {
			out = &DeleteUserOutput{Success: true}
			return nil
		}

		owned, err := uc.bookRepo.FindByOwner(ctx, user.ID, false)
		if err != nil {
			return fmt.Errorf("failed to list owned books: %w", err)
		}

		if len(owned) > 0 {
			if input.TransferToUserID == nil {
				return domainerror.NewUserError(
					domainerror.KindValidation,
					domainerror.ErrCodeTransferTargetRequired,
					"a transfer target is required: user owns books",
					domainerror.ErrTransferTargetRequired,
				)
			}
			if *input.TransferToUserID == user.ID {
				return domainerror.NewUserError(
					domainerror.KindValidation,
					domainerror.ErrCodeTransferTargetSelf,
					"transfer target must be a different user",
					domainerror.ErrTransferTargetSelf,
				)
			}
		}

		transferred := 0
		for _, b := range owned {
			if _, err := uc.transfer.Execute(ctx, book.TransferOwnershipInput{
				BookID:      b.ID,
				NewOwnerID:  *input.TransferToUserID,
				ActorID:     user.ID,
				SystemActor: true,
			}); err != nil {
				return fmt.Errorf("failed to transfer book %s: %w", b.ID, err)
			}
			transferred++
		}

		// Drop the user from every remaining book they are a member of.
		memberOf, err := uc.bookRepo.FindByMember(ctx, user.ID, false)
		if err != nil {
			return fmt.Errorf("failed to list memberships: %w", err)
		}
		now := uc.clock.Now()
		for _, b := range memberOf {
			if b.OwnerID == user.ID {
				continue
			}
			b.RemoveMember(user.ID)
			b.UpdatedAt = now
			if err := uc.bookRepo.Update(ctx, b); err != nil {
				return fmt.Errorf("failed to leave book %s: %w", b.ID, err)
			}
		}

		user.IsDeleted = true
		user.DeletedAt = &now
		user.UpdatedAt = now

		if err := uc.userRepo.Update(ctx, user); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		if err := uc.events.Publish(ctx, adapter.Event{
			Name:       adapter.EventUserDeleted,
			UserID:     user.ID,
			ActorID:    user.ID,
			OccurredAt: now,
		}); err != nil {
			slog.WarnContext(ctx, "event publish failed", "event", adapter.EventUserDeleted, "error", err)
		}

		out = &DeleteUserOutput{Success: true, TransferredBooks: transferred}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
