// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	"github.com/moneybook/backend/internal/integration/persistence/model"
)

// bookRepository implements the adapter.BookRepository interface.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository instance.
func NewBookRepository(db *gorm.DB) adapter.BookRepository {
	return &bookRepository{
		db: db,
	}
}

// Create creates a new book in the database.
func (r *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookModel := model.BookFromEntity(book)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Create(bookModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a book by its ID. Absence maps to a nil book, not an
// error; the application layer decides what absence means.
func (r *bookRepository) FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*entity.Book, error) {
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var bookModel model.BookModel
	result := query.First(&bookModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return bookModel.ToEntity(), nil
}

// FindByMember retrieves all books the user owns or is a member of.
func (r *bookRepository) FindByMember(ctx context.Context, userID uuid.UUID, includeDeleted bool) ([]*entity.Book, error) {
	// Membership is matched on the serialized member set. UUIDs are fixed
	// format, so a substring match cannot produce false positives.
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("owner_id = ? OR members LIKE ?", userID, "%"+userID.String()+"%")
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var bookModels []model.BookModel
	result := query.Order("created_at ASC").Find(&bookModels)
	if result.Error != nil {
		return nil, result.Error
	}

	books := make([]*entity.Book, len(bookModels))
	for i := range bookModels {
		books[i] = bookModels[i].ToEntity()
	}
	return books, nil
}

// FindByOwner retrieves all books owned by the user.
func (r *bookRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, includeDeleted bool) ([]*entity.Book, error) {
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("owner_id = ?", ownerID)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var bookModels []model.BookModel
	result := query.Order("created_at ASC").Find(&bookModels)
	if result.Error != nil {
		return nil, result.Error
	}

	books := make([]*entity.Book, len(bookModels))
	for i := range bookModels {
		books[i] = bookModels[i].ToEntity()
	}
	return books, nil
}

// FindDeletedBefore retrieves soft-deleted books whose deletedAt is at or
// before the cutoff.
func (r *bookRepository) FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]*entity.Book, error) {
	var bookModels []model.BookModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("is_deleted = ? AND deleted_at <= ?", true, cutoff).
		Find(&bookModels)
	if result.Error != nil {
		return nil, result.Error
	}

	books := make([]*entity.Book, len(bookModels))
	for i := range bookModels {
		books[i] = bookModels[i].ToEntity()
	}
	return books, nil
}

// Update persists the state of an existing book.
func (r *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	bookModel := model.BookFromEntity(book)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Save(bookModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// HardDelete irreversibly removes a book row.
func (r *bookRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookModel{})
	return result.Error
}
