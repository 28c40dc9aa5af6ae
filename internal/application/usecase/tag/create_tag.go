// Package tag contains tag-related use cases.
package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/domain/permission"
)

// CreateTagInput represents the input for tag creation.
type CreateTagInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
	Name        string
}

// CreateTagOutput represents the output of tag creation.
type CreateTagOutput struct {
	Tag *entity.Tag
}

// CreateTagUseCase handles tag creation logic.
type CreateTagUseCase struct {
	bookRepo adapter.BookRepository
	tagRepo  adapter.TagRepository
}

// NewCreateTagUseCase creates a new CreateTagUseCase instance.
func NewCreateTagUseCase(bookRepo adapter.BookRepository, tagRepo adapter.TagRepository) *CreateTagUseCase {
	return &CreateTagUseCase{
		bookRepo: bookRepo,
		tagRepo:  tagRepo,
	}
}

// Execute creates the tag. Requires the editor role.
func (uc *CreateTagUseCase) Execute(ctx context.Context, input CreateTagInput) (*CreateTagOutput, error) {
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
			domainerror.ErrCodeTagNameRequired,
			"tag name is required",
			domainerror.ErrTagNameRequired,
		)
	}

	tag := entity.NewTag(book.ID, input.Name)

	if err := uc.tagRepo.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return &CreateTagOutput{Tag: tag}, nil
}
