// Package person contains person-related use cases.
package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/domain/permission"
)

// UpdatePersonInput represents the input for renaming a person.
type UpdatePersonInput struct {
	BookID      uuid.UUID
	PersonID    uuid.UUID
	RequesterID uuid.UUID
	Name        string
}

// UpdatePersonOutput represents the output of renaming a person.
type UpdatePersonOutput struct {
	Person *entity.Person
}

// UpdatePersonUseCase handles person renames.
type UpdatePersonUseCase struct {
	bookRepo   adapter.BookRepository
	personRepo adapter.PersonRepository
	clock      adapter.Clock
}

// NewUpdatePersonUseCase creates a new UpdatePersonUseCase instance.
func NewUpdatePersonUseCase(bookRepo adapter.BookRepository, personRepo adapter.PersonRepository, clock adapter.Clock) *UpdatePersonUseCase {
	return &UpdatePersonUseCase{
		bookRepo:   bookRepo,
		personRepo: personRepo,
		clock:      clock,
	}
}

// Execute renames the person. Requires the editor role.
func (uc *UpdatePersonUseCase) Execute(ctx context.Context, input UpdatePersonInput) (*UpdatePersonOutput, error) {
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

	if input.Name == "" {
		return nil, domainerror.NewTaxonomyError(
			domainerror.KindValidation,
			domainerror.ErrCodePersonNameRequired,
			"person name is required",
			domainerror.ErrPersonNameRequired,
		)
	}

	person.Name = input.Name
	person.UpdatedAt = uc.clock.Now()

	if err := uc.personRepo.Update(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	return &UpdatePersonOutput{Person: person}, nil
}
