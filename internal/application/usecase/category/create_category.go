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

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
	Name        string
	Type        entity.CategoryType
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	bookRepo     adapter.BookRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(bookRepo adapter.BookRepository, categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute creates the category. Requires the editor role.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
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
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	if !entity.IsValidCategoryType(input.Type) {
		return nil, domainerror.NewTaxonomyError(
			domainerror.KindValidation,
			domainerror.ErrCodeInvalidCategoryType,
			"type must be 'income', 'expense' or 'loan'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	category := entity.NewCategory(book.ID, input.Name, input.Type)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}
