// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/permission"
)

// DeleteCategoryInput represents the input for soft-deleting a category.
type DeleteCategoryInput struct {
	BookID      uuid.UUID
	CategoryID  uuid.UUID
	RequesterID uuid.UUID
}

// DeleteCategoryOutput represents the output of deleting a category.
type DeleteCategoryOutput struct {
	Success bool
}

// DeleteCategoryUseCase soft-deletes a category.
type DeleteCategoryUseCase struct {
	bookRepo     adapter.BookRepository
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(bookRepo adapter.BookRepository, categoryRepo adapter.CategoryRepository, clock adapter.Clock) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute soft-deletes the category. Requires the editor role.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, true)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpWriteEntities); err != nil {
		return nil, err
	}

	category, err := findCategory(ctx, uc.categoryRepo, input.CategoryID, book.ID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	category.IsDeleted = true
	category.DeletedAt = &now
	category.UpdatedAt = now

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{Success: true}, nil
}
