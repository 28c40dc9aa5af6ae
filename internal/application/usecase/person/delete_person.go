// Package person contains person-related use cases.
package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/permission"
)

// DeletePersonInput represents the input for soft-deleting a person.
type DeletePersonInput struct {
	BookID      uuid.UUID
	PersonID    uuid.UUID
	RequesterID uuid.UUID
}

// DeletePersonOutput represents the output of deleting a person.
type DeletePersonOutput struct {
	Success bool
}

// DeletePersonUseCase soft-deletes a person.
type DeletePersonUseCase struct {
	bookRepo   adapter.BookRepository
	personRepo adapter.PersonRepository
	clock      adapter.Clock
}

// NewDeletePersonUseCase creates a new DeletePersonUseCase instance.
func NewDeletePersonUseCase(bookRepo adapter.BookRepository, personRepo adapter.PersonRepository, clock adapter.Clock) *DeletePersonUseCase {
	return &DeletePersonUseCase{
		bookRepo:   bookRepo,
		personRepo: personRepo,
		clock:      clock,
	}
}

// Execute soft-deletes the person. Requires the editor role.
func (uc *DeletePersonUseCase) Execute(ctx context.Context, input DeletePersonInput) (*DeletePersonOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, true)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpWriteEntities); err != nil {
		return nil, err
	}

	person, err := findPerson(ctx, uc.personRepo, input.PersonID, book.ID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	person.IsDeleted = true
	person.DeletedAt = &now
	person.UpdatedAt = now

	if err := uc.personRepo.Update(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to delete person: %w", err)
	}

	return &DeletePersonOutput{Success: true}, nil
}
