// Package book contains book-related use cases.
package book

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	"github.com/moneybook/backend/internal/domain/permission"
)

// DeleteBookInput represents the input for soft-deleting a book.
type DeleteBookInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
}

// DeleteBookOutput represents the output of soft-deleting a book.
type DeleteBookOutput struct {
	Book *entity.Book
}

// DeleteBookUseCase drives the Active|Archived -> SoftDeleted transition.
type DeleteBookUseCase struct {
	bookRepo adapter.BookRepository
	clock    adapter.Clock
	events   adapter.EventSink
}

// NewDeleteBookUseCase creates a new DeleteBookUseCase instance.
func NewDeleteBookUseCase(bookRepo adapter.BookRepository, clock adapter.Clock, events adapter.EventSink) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookRepo: bookRepo,
		clock:    clock,
		events:   events,
	}
}

// Execute soft-deletes the book. Owner only. Re-issuing delete on an
// already-deleted book is a no-op success so retries converge.
func (uc *DeleteBookUseCase) Execute(ctx context.Context, input DeleteBookInput) (*DeleteBookOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, true)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpManageLifecycle); err != nil {
		return nil, err
	}

	if book.IsDeleted {
		return &DeleteBookOutput{Book: book}, nil
	}

	now := uc.clock.Now()
	book.IsDeleted = true
	book.DeletedAt = &now
	book.UpdatedAt = now

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to delete book: %w", err)
	}

	publish(ctx, uc.events, adapter.Event{
		Name:       adapter.EventBookDeleted,
		BookID:     book.ID,
		ActorID:    input.RequesterID,
		OccurredAt: now,
	})

	return &DeleteBookOutput{Book: book}, nil
}
