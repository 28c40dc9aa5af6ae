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

// tagRepository implements the adapter.TagRepository interface.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository instance.
func NewTagRepository(db *gorm.DB) adapter.TagRepository {
	return &tagRepository{
		db: db,
	}
}

// Create creates a new tag in the database.
func (r *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	tagModel := model.TagFromEntity(tag)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Create(tagModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a tag by its ID.
func (r *tagRepository) FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*entity.Tag, error) {
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var tagModel model.TagModel
	result := query.First(&tagModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return tagModel.ToEntity(), nil
}

// FindByBook retrieves all tags of a book.
func (r *tagRepository) FindByBook(ctx context.Context, bookID uuid.UUID, includeDeleted bool) ([]*entity.Tag, error) {
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("book_id = ?", bookID)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var tagModels []model.TagModel
	result := query.Order("created_at ASC").Find(&tagModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tags := make([]*entity.Tag, len(tagModels))
	for i := range tagModels {
		tags[i] = tagModels[i].ToEntity()
	}
	return tags, nil
}

// Update persists the state of an existing tag.
func (r *tagRepository) Update(ctx context.Context, tag *entity.Tag) error {
	tagModel := model.TagFromEntity(tag)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Save(tagModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// HardDeleteByBook irreversibly removes all tag rows of a book.
func (r *tagRepository) HardDeleteByBook(ctx context.Context, bookID uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("book_id = ?", bookID).
		Delete(&model.TagModel{})
	return result.Error
}
