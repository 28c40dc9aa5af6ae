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

// TransferOwnershipInput represents the input for transferring book ownership.
type TransferOwnershipInput struct {
	BookID     uuid.UUID
	NewOwnerID uuid.UUID
	ActorID    uuid.UUID

	// SystemActor marks an administrative transfer performed by the engine
	// itself, e.g. while deleting a user. It bypasses the owner check but
	// nothing else.
	SystemActor bool
}

// TransferOwnershipOutput represents the output of an ownership transfer.
type TransferOwnershipOutput struct {
	Book *entity.Book
}

// TransferOwnershipUseCase moves a book to a new owner as a single atomic
// unit: history entry, owner change and idempotent member add all commit
// together or not at all.
type TransferOwnershipUseCase struct {
	bookRepo adapter.BookRepository
	userRepo adapter.UserRepository
	txm      adapter.TxManager
	clock    adapter.Clock
	events   adapter.EventSink
}

// NewTransferOwnershipUseCase creates a new TransferOwnershipUseCase instance.
func NewTransferOwnershipUseCase(
	bookRepo adapter.BookRepository,
	userRepo adapter.UserRepository,
	txm adapter.TxManager,
	clock adapter.Clock,
	events adapter.EventSink,
) *TransferOwnershipUseCase {
	return &TransferOwnershipUseCase{
		bookRepo: bookRepo,
		userRepo: userRepo,
		txm:      txm,
		clock:    clock,
		events:   events,
	}
}

// Execute transfers ownership of the book to NewOwnerID. Re-running the same
// transfer is a no-op: no duplicate history entry, no second owner change.
func (uc *TransferOwnershipUseCase) Execute(ctx context.Context, input TransferOwnershipInput) (*TransferOwnershipOutput, error) {
	var out *TransferOwnershipOutput

	err := uc.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		book, err := findBook(ctx, uc.bookRepo, input.BookID, true)
		if err != nil {
			return err
		}

		if !input.SystemActor {
			if err := permission.Authorize(book, input.ActorID, permission.OpManageLifecycle); err != nil {
				return err
			}
		}

		// Idempotency guard: transferring to the current owner changes nothing.
		if book.OwnerID == input.NewOwnerID {
			out = &TransferOwnershipOutput{Book: book}
			return nil
		}

		target, err := uc.userRepo.FindByID(ctx, input.NewOwnerID, false)
		if err != nil {
			return fmt.Errorf("failed to look up transfer target: %w", err)
		}
		if target == nil {
			return domainerror.NewBookError(
				domainerror.KindValidation,
				domainerror.ErrCodeTransferTarget,
				"transfer target is not a valid user",
				domainerror.ErrTransferTargetInvalid,
			)
		}

		now := uc.clock.Now()
		book.TransferHistory = append(book.TransferHistory, entity.TransferRecord{
			FromUser: book.OwnerID,
			ToUser:   input.NewOwnerID,
			Date:     now,
		})
		book.OwnerID = input.NewOwnerID
		book.AddMember(input.NewOwnerID)
		book.UpdatedAt = now

		if err := uc.bookRepo.Update(ctx, book); err != nil {
			return fmt.Errorf("failed to transfer book: %w", err)
		}

		publish(ctx, uc.events, adapter.Event{
			Name:       adapter.EventBookTransferred,
			BookID:     book.ID,
			UserID:     input.NewOwnerID,
			ActorID:    input.ActorID,
			OccurredAt: now,
		})

		out = &TransferOwnershipOutput{Book: book}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
