// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/domain/permission"
)

// UpdateCategoryInput represents the input for updating a category.
type UpdateCategoryInput struct {
	BookID      uuid.UUID
	CategoryID  uuid.UUID
	RequesterID uuid.UUID
	Name        string
}

// UpdateCategoryOutput represents the output of updating a category.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category updates. The type is immutable:
// existing transactions aggregate by the declared type.
type UpdateCategoryUseCase struct {
	bookRepo     adapter.BookRepository
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(bookRepo adapter.BookRepository, categoryRepo adapter.CategoryRepository, clock adapter.Clock) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute renames the category. Requires the editor role.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
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

	if input.Name == "" {
		return nil, domainerror.NewTaxonomyError(
			domainerror.KindValidation,
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	category.Name = input.Name
	category.UpdatedAt = uc.clock.Now()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
