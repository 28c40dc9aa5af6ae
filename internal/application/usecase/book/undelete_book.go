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

// UndeleteBookInput represents the input for undeleting a book.
type UndeleteBookInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
}

// UndeleteBookOutput represents the output of undeleting a book.
type UndeleteBookOutput struct {
	Book *entity.Book
}

// UndeleteBookUseCase drives the SoftDeleted -> Active transition.
type UndeleteBookUseCase struct {
	bookRepo adapter.BookRepository
	clock    adapter.Clock
	events   adapter.EventSink
}

// NewUndeleteBookUseCase creates a new UndeleteBookUseCase instance.
func NewUndeleteBookUseCase(bookRepo adapter.BookRepository, clock adapter.Clock, events adapter.EventSink) *UndeleteBookUseCase {
	return &UndeleteBookUseCase{
		bookRepo: bookRepo,
		clock:    clock,
		events:   events,
	}
}

// Execute undeletes the book. The book always lands in Active: a book that
// was archived before deletion does not return to Archived.
func (uc *UndeleteBookUseCase) Execute(ctx context.Context, input UndeleteBookInput) (*UndeleteBookOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, true)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpManageLifecycle); err != nil {
		return nil, err
	}

	if !book.IsDeleted {
		return nil, domainerror.NewBookError(
			domainerror.KindConflict,
			domainerror.ErrCodeBookNotDeleted,
			"book is not deleted",
			domainerror.ErrBookNotDeleted,
		)
	}

	now := uc.clock.Now()
	book.IsDeleted = false
	book.DeletedAt = nil
	book.IsArchived = false
	book.ArchivedAt = nil
	book.UpdatedAt = now

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to undelete book: %w", err)
	}

	publish(ctx, uc.events, adapter.Event{
		Name:       adapter.EventBookUndeleted,
		BookID:     book.ID,
		ActorID:    input.RequesterID,
		OccurredAt: now,
	})

	return &UndeleteBookOutput{Book: book}, nil
}
