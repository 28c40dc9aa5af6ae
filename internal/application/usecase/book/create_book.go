// Package book contains book-related use cases.
package book

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
)

// CreateBookInput represents the input for book creation.
type CreateBookInput struct {
	Name    string
	OwnerID uuid.UUID
}

// CreateBookOutput represents the output of book creation.
type CreateBookOutput struct {
	Book *entity.Book
}

// CreateBookUseCase handles book creation logic.
type CreateBookUseCase struct {
	bookRepo adapter.BookRepository
	events   adapter.EventSink
}

// NewCreateBookUseCase creates a new CreateBookUseCase instance.
func NewCreateBookUseCase(bookRepo adapter.BookRepository, events adapter.EventSink) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookRepo: bookRepo,
		events:   events,
	}
}

// Execute performs the book creation. The creator becomes the owner and is
// implicitly a member; new books are seeded with the system currencies.
func (uc *CreateBookUseCase) Execute(ctx context.Context, input CreateBookInput) (*CreateBookOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	book := entity.NewBook(input.Name, input.OwnerID)

	if err := uc.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	publish(ctx, uc.events, adapter.Event{
		Name:       adapter.EventBookCreated,
		BookID:     book.ID,
		ActorID:    input.OwnerID,
		OccurredAt: book.CreatedAt,
	})

	return &CreateBookOutput{Book: book}, nil
}
