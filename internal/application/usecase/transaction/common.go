// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
)

// findBook loads a live book or reports NotFound. Child-entity writes are
// additionally rejected while the book is archived.
func findBook(ctx context.Context, repo adapter.BookRepository, id uuid.UUID, forWrite bool) (*entity.Book, error) {
	book, err := repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domainerror.NewBookError(
			domainerror.KindNotFound,
			domainerror.ErrCodeBookNotFound,
			"book not found",
			domainerror.ErrBookNotFound,
		)
	}
	if forWrite && book.IsArchived {
		return nil, domainerror.NewBookError(
			domainerror.KindConflict,
			domainerror.ErrCodeBookArchived,
			"book is archived",
			domainerror.ErrBookArchived,
		)
	}
	return book, nil
}

// validateReferences checks the account and category the transaction points
// at: both must be live members of the book, and the transaction type must
// match the category's declared type.
func validateReferences(
	ctx context.Context,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	bookID, accountID, categoryID uuid.UUID,
	txnType entity.TransactionType,
) error {
	account, err := accountRepo.FindByID(ctx, accountID, false)
	if err != nil {
		return err
	}
	if account == nil || account.BookID != bookID {
		return domainerror.NewAccountError(
			domainerror.KindNotFound,
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	category, err := categoryRepo.FindByID(ctx, categoryID, false)
	if err != nil {
		return err
	}
	if category == nil || category.BookID != bookID {
		return domainerror.NewTaxonomyError(
			domainerror.KindNotFound,
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if string(category.Type) != string(txnType) {
		return domainerror.NewTransactionError(
			domainerror.KindValidation,
			domainerror.ErrCodeCategoryTypeMismatch,
			"transaction type does not match category type",
			domainerror.ErrTransactionCategoryMismatch,
		)
	}

	return nil
}
