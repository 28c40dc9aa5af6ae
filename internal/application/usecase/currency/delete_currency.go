// Package currency contains the currency-management use cases for a book.
package currency

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/domain/permission"
)

// DeleteCurrencyInput represents the input for removing a currency from a book.
type DeleteCurrencyInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
	Code        string
}

// DeleteCurrencyOutput represents the output of deleting a currency.
type DeleteCurrencyOutput struct {
	Book *entity.Book
}

// DeleteCurrencyUseCase removes a currency from a book's registered set.
type DeleteCurrencyUseCase struct {
	bookRepo    adapter.BookRepository
	accountRepo adapter.AccountRepository
	clock       adapter.Clock
}

// NewDeleteCurrencyUseCase creates a new DeleteCurrencyUseCase instance.
func NewDeleteCurrencyUseCase(bookRepo adapter.BookRepository, accountRepo adapter.AccountRepository, clock adapter.Clock) *DeleteCurrencyUseCase {
	return &DeleteCurrencyUseCase{
		bookRepo:    bookRepo,
		accountRepo: accountRepo,
		clock:       clock,
	}
}

// Execute deletes the currency. Requires the admin role. Rejected when the
// code is the default currency, a fixed system currency, or referenced by
// any non-deleted account.
func (uc *DeleteCurrencyUseCase) Execute(ctx context.Context, input DeleteCurrencyInput) (*DeleteCurrencyOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpManageBook); err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))

	if code == book.DefaultCurrency {
		return nil, domainerror.NewCurrencyError(
			domainerror.KindConflict,
			domainerror.ErrCodeCurrencyIsDefault,
			"cannot delete the book's default currency",
			domainerror.ErrCurrencyIsDefault,
		)
	}

	if entity.IsSystemCurrency(code) {
		return nil, domainerror.NewCurrencyError(
			domainerror.KindConflict,
			domainerror.ErrCodeCurrencyIsSystem,
			"cannot delete a fixed system currency",
			domainerror.ErrCurrencyIsSystem,
		)
	}

	if book.FindCurrency(code) == nil {
		return nil, domainerror.NewCurrencyError(
			domainerror.KindNotFound,
			domainerror.ErrCodeCurrencyNotFound,
			"currency not found in book",
			domainerror.ErrCurrencyNotFound,
		)
	}

	inUse, err := uc.accountRepo.ExistsByBookAndCurrency(ctx, book.ID, code)
	if err != nil {
		return nil, fmt.Errorf("failed to check currency usage: %w", err)
	}
	if inUse {
		return nil, domainerror.NewCurrencyError(
			domainerror.KindConflict,
			domainerror.ErrCodeCurrencyInUse,
			"currency is referenced by a non-deleted account",
			domainerror.ErrCurrencyInUse,
		)
	}

	currencies := book.Currencies[:0]
	for _, c := range book.Currencies {
		if c.Code != code {
			currencies = append(currencies, c)
		}
	}
	book.Currencies = currencies
	book.UpdatedAt = uc.clock.Now()

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to delete currency: %w", err)
	}

	return &DeleteCurrencyOutput{Book: book}, nil
}
