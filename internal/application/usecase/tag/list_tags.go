// Package tag contains tag-related use cases.
package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	"github.com/moneybook/backend/internal/domain/permission"
)

// ListTagsInput represents the input for listing a book's tags.
type ListTagsInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
}

// ListTagsOutput represents the output of listing tags.
type ListTagsOutput struct {
	Tags []*entity.Tag
}

// ListTagsUseCase handles listing the tags of a book.
type ListTagsUseCase struct {
	bookRepo adapter.BookRepository
	tagRepo  adapter.TagRepository
}

// NewListTagsUseCase creates a new ListTagsUseCase instance.
func NewListTagsUseCase(bookRepo adapter.BookRepository, tagRepo adapter.TagRepository) *ListTagsUseCase {
	return &ListTagsUseCase{
		bookRepo: bookRepo,
		tagRepo:  tagRepo,
	}
}

// Execute lists the book's non-deleted tags. Requires membership.
func (uc *ListTagsUseCase) Execute(ctx context.Context, input ListTagsInput) (*ListTagsOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, false)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpReadBook); err != nil {
		return nil, err
	}

	tags, err := uc.tagRepo.FindByBook(ctx, book.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return &ListTagsOutput{Tags: tags}, nil
}
