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

// UpdateBookInput represents the input for updating book metadata.
type UpdateBookInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
	Name        string
}

// UpdateBookOutput represents the output of updating a book.
type UpdateBookOutput struct {
	Book *entity.Book
}

// UpdateBookUseCase handles updating book metadata.
type UpdateBookUseCase struct {
	bookRepo adapter.BookRepository
	clock    adapter.Clock
}

// NewUpdateBookUseCase creates a new UpdateBookUseCase instance.
func NewUpdateBookUseCase(bookRepo adapter.BookRepository, clock adapter.Clock) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookRepo: bookRepo,
		clock:    clock,
	}
}

// Execute updates the book's metadata. Requires the admin role.
func (uc *UpdateBookUseCase) Execute(ctx context.Context, input UpdateBookInput) (*UpdateBookOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, false)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpManageBook); err != nil {
		return nil, err
	}

	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	book.Name = input.Name
	book.UpdatedAt = uc.clock.Now()

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return &UpdateBookOutput{Book: book}, nil
}
