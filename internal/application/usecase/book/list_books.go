// Package book contains book-related use cases.
package book

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
)

// ListBooksInput represents the input for listing a user's books.
type ListBooksInput struct {
	RequesterID uuid.UUID
}

// ListBooksOutput represents the output of listing books.
type ListBooksOutput struct {
	Books []*entity.Book
}

// ListBooksUseCase handles listing the books a user owns or belongs to.
type ListBooksUseCase struct {
	bookRepo adapter.BookRepository
}

// NewListBooksUseCase creates a new ListBooksUseCase instance.
func NewListBooksUseCase(bookRepo adapter.BookRepository) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookRepo: bookRepo,
	}
}

// Execute lists the requester's books. Soft-deleted books are excluded.
func (uc *ListBooksUseCase) Execute(ctx context.Context, input ListBooksInput) (*ListBooksOutput, error) {
	books, err := uc.bookRepo.FindByMember(ctx, input.RequesterID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	return &ListBooksOutput{Books: books}, nil
}
