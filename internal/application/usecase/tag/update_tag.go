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

// UpdateTagInput represents the input for renaming a tag.
type UpdateTagInput struct {
	BookID      uuid.UUID
	TagID       uuid.UUID
	RequesterID uuid.UUID
	Name        string
}

// UpdateTagOutput represents the output of renaming a tag.
type UpdateTagOutput struct {
	Tag *entity.Tag
}

// UpdateTagUseCase handles tag renames.
type UpdateTagUseCase struct {
	bookRepo adapter.BookRepository
	tagRepo  adapter.TagRepository
	clock    adapter.Clock
}

// NewUpdateTagUseCase creates a new UpdateTagUseCase instance.
func NewUpdateTagUseCase(bookRepo adapter.BookRepository, tagRepo adapter.TagRepository, clock adapter.Clock) *UpdateTagUseCase {
	return &UpdateTagUseCase{
		bookRepo: bookRepo,
		tagRepo:  tagRepo,
		clock:    clock,
	}
}

// Execute renames the tag. Requires the editor role.
func (uc *UpdateTagUseCase) Execute(ctx context.Context, input UpdateTagInput) (*UpdateTagOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, true)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpWriteEntities); err != nil {
		return nil, err
	}

	tag, err := findTag(ctx, uc.tagRepo, input.TagID, book.ID)
	if err != nil {
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

	tag.Name = input.Name
	tag.UpdatedAt = uc.clock.Now()

	if err := uc.tagRepo.Update(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}

	return &UpdateTagOutput{Tag: tag}, nil
}
