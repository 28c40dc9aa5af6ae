// Package currency contains the currency-management use cases for a book.
package currency

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/domain/permission"
)

// AddCurrencyInput represents the input for registering a currency on a book.
type AddCurrencyInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
	Code        string
	Name        string
	Symbol      string
	Rate        decimal.Decimal
}

// AddCurrencyOutput represents the output of adding a currency.
type AddCurrencyOutput struct {
	Book *entity.Book
}

// AddCurrencyUseCase registers a new currency on a book.
type AddCurrencyUseCase struct {
	bookRepo adapter.BookRepository
	clock    adapter.Clock
}

// NewAddCurrencyUseCase creates a new AddCurrencyUseCase instance.
func NewAddCurrencyUseCase(bookRepo adapter.BookRepository, clock adapter.Clock) *AddCurrencyUseCase {
	return &AddCurrencyUseCase{
		bookRepo: bookRepo,
		clock:    clock,
	}
}

// Execute adds the currency. Requires the admin role, a code unique within
// the book and a positive rate.
func (uc *AddCurrencyUseCase) Execute(ctx context.Context, input AddCurrencyInput) (*AddCurrencyOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpManageBook); err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, domainerror.NewCurrencyError(
			domainerror.KindValidation,
			domainerror.ErrCodeCurrencyCodeRequired,
			"currency code is required",
			domainerror.ErrCurrencyCodeRequired,
		)
	}

	if !input.Rate.IsPositive() {
		return nil, domainerror.NewCurrencyError(
			domainerror.KindValidation,
			domainerror.ErrCodeInvalidCurrencyRate,
			"currency rate must be positive",
			domainerror.ErrInvalidCurrencyRate,
		)
	}

	if book.FindCurrency(code) != nil {
		return nil, domainerror.NewCurrencyError(
			domainerror.KindConflict,
			domainerror.ErrCodeDuplicateCurrencyCode,
			"currency code already exists in book",
			domainerror.ErrDuplicateCurrencyCode,
		)
	}

	book.Currencies = append(book.Currencies, entity.Currency{
		Code:   code,
		Name:   input.Name,
		Symbol: input.Symbol,
		Rate:   input.Rate,
	})
	book.UpdatedAt = uc.clock.Now()

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to add currency: %w", err)
	}

	return &AddCurrencyOutput{Book: book}, nil
}

// findBook loads a live book or reports NotFound.
func findBook(ctx context.Context, repo adapter.BookRepository, id uuid.UUID) (*entity.Book, error) {
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
	return book, nil
}
