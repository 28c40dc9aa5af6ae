// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	"github.com/moneybook/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*entity.Category, error) {
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var categoryModel model.CategoryModel
	result := query.First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByBook retrieves all categories of a book.
func (r *categoryRepository) FindByBook(ctx context.Context, bookID uuid.UUID, includeDeleted bool) ([]*entity.Category, error) {
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("book_id = ?", bookID)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var categoryModels []model.CategoryModel
	result := query.Order("created_at ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}

// Update persists the state of an existing category.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// HardDeleteByBook irreversibly removes all category rows of a book.
func (r *categoryRepository) HardDeleteByBook(ctx context.Context, bookID uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("book_id = ?", bookID).
		Delete(&model.CategoryModel{})
	return result.Error
}
