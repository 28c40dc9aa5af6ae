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

// RestoreBookInput represents the input for restoring an archived book.
type RestoreBookInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
}

// RestoreBookOutput represents the output of restoring a book.
type RestoreBookOutput struct {
	Book *entity.Book
}

// RestoreBookUseCase drives the Archived -> Active transition.
type RestoreBookUseCase struct {
	bookRepo adapter.BookRepository
	clock    adapter.Clock
	events   adapter.EventSink
}

// NewRestoreBookUseCase creates a new RestoreBookUseCase instance.
func NewRestoreBookUseCase(bookRepo adapter.BookRepository, clock adapter.Clock, events adapter.EventSink) *RestoreBookUseCase {
	return &RestoreBookUseCase{
		bookRepo: bookRepo,
		clock:    clock,
		events:   events,
	}
}

// Execute restores the book from archive. Owner only; restoring a book that
// is not archived is a state-incompatible transition and is rejected.
func (uc *RestoreBookUseCase) Execute(ctx context.Context, input RestoreBookInput) (*RestoreBookOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, false)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpManageLifecycle); err != nil {
		return nil, err
	}

	if !book.IsArchived {
		return nil, domainerror.NewBookError(
			domainerror.KindConflict,
			domainerror.ErrCodeBookNotArchived,
			"book is not archived",
			domainerror.ErrBookNotArchived,
		)
	}

	now := uc.clock.Now()
	book.IsArchived = false
	book.ArchivedAt = nil
	book.UpdatedAt = now

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to restore book: %w", err)
	}

	publish(ctx, uc.events, adapter.Event{
		Name:       adapter.EventBookRestored,
		BookID:     book.ID,
		ActorID:    input.RequesterID,
		OccurredAt: now,
	})

	return &RestoreBookOutput{Book: book}, nil
}
