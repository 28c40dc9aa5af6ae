// Package person contains person-related use cases.
package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	"github.com/moneybook/backend/internal/domain/permission"
)

// ListPersonsInput represents the input for listing a book's persons.
type ListPersonsInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
}

// ListPersonsOutput represents the output of listing persons.
type ListPersonsOutput struct {
	Persons []*entity.Person
}

// ListPersonsUseCase handles listing the persons of a book.
type ListPersonsUseCase struct {
	bookRepo   adapter.BookRepository
	personRepo adapter.PersonRepository
}

// NewListPersonsUseCase creates a new ListPersonsUseCase instance.
func NewListPersonsUseCase(bookRepo adapter.BookRepository, personRepo adapter.PersonRepository) *ListPersonsUseCase {
	return &ListPersonsUseCase{
		bookRepo:   bookRepo,
		personRepo: personRepo,
	}
}

// Execute lists the book's non-deleted persons. Requires membership.
func (uc *ListPersonsUseCase) Execute(ctx context.Context, input ListPersonsInput) (*ListPersonsOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, false)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpReadBook); err != nil {
		return nil, err
	}

	persons, err := uc.personRepo.FindByBook(ctx, book.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	return &ListPersonsOutput{Persons: persons}, nil
}
