// Package account contains account-related use cases.
package account

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

// findAccount loads a live account belonging to the book or reports NotFound.
func findAccount(ctx context.Context, repo adapter.AccountRepository, id, bookID uuid.UUID) (*entity.Account, error) {
	account, err := repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if account == nil || account.BookID != bookID {
		return nil, domainerror.NewAccountError(
			domainerror.KindNotFound,
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}
	return account, nil
}
