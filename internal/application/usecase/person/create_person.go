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

// CreatePersonInput represents the input for person creation.
type CreatePersonInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
	Name        string
}

// CreatePersonOutput represents the output of person creation.
type CreatePersonOutput struct {
	Person *entity.Person
}

// CreatePersonUseCase handles person creation logic.
type CreatePersonUseCase struct {
	bookRepo   adapter.BookRepository
	personRepo adapter.PersonRepository
}

// NewCreatePersonUseCase creates a new CreatePersonUseCase instance.
func NewCreatePersonUseCase(bookRepo adapter.BookRepository, personRepo adapter.PersonRepository) *CreatePersonUseCase {
	return &CreatePersonUseCase{
		bookRepo:   bookRepo,
		personRepo: personRepo,
	}
}

// Execute creates the person. Requires the editor role.
func (uc *CreatePersonUseCase) Execute(ctx context.Context, input CreatePersonInput) (*CreatePersonOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, true)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpWriteEntities); err != nil {
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

	person := entity.NewPerson(book.ID, input.Name)

	if err := uc.personRepo.Create(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return &CreatePersonOutput{Person: person}, nil
}
