// Package tag contains tag-related use cases.
package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/permission"
)

// DeleteTagInput represents the input for soft-deleting a tag.
type DeleteTagInput struct {
	BookID      uuid.UUID
	TagID       uuid.UUID
	RequesterID uuid.UUID
}

// DeleteTagOutput represents the output of deleting a tag.
type DeleteTagOutput struct {
	Success bool
}

// DeleteTagUseCase soft-deletes a tag. Transactions keep referencing the
// deleted tag id; the reference simply stops resolving for new writes.
type DeleteTagUseCase struct {
	bookRepo adapter.BookRepository
	tagRepo  adapter.TagRepository
	clock    adapter.Clock
}

// NewDeleteTagUseCase creates a new DeleteTagUseCase instance.
func NewDeleteTagUseCase(bookRepo adapter.BookRepository, tagRepo adapter.TagRepository, clock adapter.Clock) *DeleteTagUseCase {
	return &DeleteTagUseCase{
		bookRepo: bookRepo,
		tagRepo:  tagRepo,
		clock:    clock,
	}
}

// Execute soft-deletes the tag. Requires the editor role.
func (uc *DeleteTagUseCase) Execute(ctx context.Context, input DeleteTagInput) (*DeleteTagOutput, error) {
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

	now := uc.clock.Now()
	tag.IsDeleted = true
	tag.DeletedAt = &now
	tag.UpdatedAt = now

	if err := uc.tagRepo.Update(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to delete tag: %w", err)
	}

	return &DeleteTagOutput{Success: true}, nil
}
