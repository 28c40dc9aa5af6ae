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

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an account by its ID.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*entity.Account, error) {
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var accountModel model.AccountModel
	result := query.First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByBook retrieves all accounts of a book.
func (r *accountRepository) FindByBook(ctx context.Context, bookID uuid.UUID, includeDeleted bool) ([]*entity.Account, error) {
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("book_id = ?", bookID)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var accountModels []model.AccountModel
	result := query.Order("created_at ASC").Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i := range accountModels {
		accounts[i] = accountModels[i].ToEntity()
	}
	return accounts, nil
}

// ExistsByBookAndCurrency checks whether any non-deleted account of the book
// references the currency code.
func (r *accountRepository) ExistsByBookAndCurrency(ctx context.Context, bookID uuid.UUID, currencyCode string) (bool, error) {
	var count int64
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("book_id = ? AND currency = ? AND is_deleted = ?", bookID, currencyCode, false).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update persists the state of an existing account.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Save(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// HardDeleteByBook irreversibly removes all account rows of a book.
func (r *accountRepository) HardDeleteByBook(ctx context.Context, bookID uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("book_id = ?", bookID).
		Delete(&model.AccountModel{})
	return result.Error
}
