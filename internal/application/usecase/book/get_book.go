// Package book contains book-related use cases.
package book

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	"github.com/moneybook/backend/internal/domain/permission"
)

// GetBookInput represents the input for reading a book.
type GetBookInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
}

// GetBookOutput represents the output of reading a book.
type GetBookOutput struct {
	Book *entity.Book
	Role entity.Role
}

// GetBookUseCase handles reading a single book.
type GetBookUseCase struct {
	bookRepo adapter.BookRepository
}

// NewGetBookUseCase creates a new GetBookUseCase instance.
func NewGetBookUseCase(bookRepo adapter.BookRepository) *GetBookUseCase {
	return &GetBookUseCase{
		bookRepo: bookRepo,
	}
}

// Execute reads the book. Requires the requester to be owner or member.
func (uc *GetBookUseCase) Execute(ctx context.Context, input GetBookInput) (*GetBookOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, false)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpReadBook); err != nil {
		return nil, err
	}

	return &GetBookOutput{
		Book: book,
		Role: permission.ResolveRole(book, input.RequesterID),
	}, nil
}
