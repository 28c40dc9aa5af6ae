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

// ArchiveBookInput represents the input for archiving a book.
type ArchiveBookInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
}

// ArchiveBookOutput represents the output of archiving a book.
type ArchiveBookOutput struct {
	Book *entity.Book
}

// ArchiveBookUseCase drives the Active -> Archived transition.
type ArchiveBookUseCase struct {
	bookRepo adapter.BookRepository
	clock    adapter.Clock
	events   adapter.EventSink
}

// NewArchiveBookUseCase creates a new ArchiveBookUseCase instance.
func NewArchiveBookUseCase(bookRepo adapter.BookRepository, clock adapter.Clock, events adapter.EventSink) *ArchiveBookUseCase {
	return &ArchiveBookUseCase{
		bookRepo: bookRepo,
		clock:    clock,
		events:   events,
	}
}

// Execute archives the book. Owner only; a deleted book cannot be archived.
// Archiving an already-archived book is a no-op success.
func (uc *ArchiveBookUseCase) Execute(ctx context.Context, input ArchiveBookInput) (*ArchiveBookOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, false)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpManageLifecycle); err != nil {
		return nil, err
	}

	if book.IsArchived {
		return &ArchiveBookOutput{Book: book}, nil
	}

	now := uc.clock.Now()
	book.IsArchived = true
	book.ArchivedAt = &now
	book.UpdatedAt = now

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to archive book: %w", err)
	}

	publish(ctx, uc.events, adapter.Event{
		Name:       adapter.EventBookArchived,
		BookID:     book.ID,
		ActorID:    input.RequesterID,
		OccurredAt: now,
	})

	return &ArchiveBookOutput{Book: book}, nil
}
