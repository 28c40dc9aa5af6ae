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

// UpdateCurrencyInput represents the input for updating a currency's rate.
type UpdateCurrencyInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
	Code        string
	Rate        decimal.Decimal
}

// UpdateCurrencyOutput represents the output of updating a currency.
type UpdateCurrencyOutput struct {
	Book *entity.Book
}

// UpdateCurrencyUseCase updates the exchange rate of a registered currency.
type UpdateCurrencyUseCase struct {
	bookRepo adapter.BookRepository
	clock    adapter.Clock
}

// NewUpdateCurrencyUseCase creates a new UpdateCurrencyUseCase instance.
func NewUpdateCurrencyUseCase(bookRepo adapter.BookRepository, clock adapter.Clock) *UpdateCurrencyUseCase {
	return &UpdateCurrencyUseCase{
		bookRepo: bookRepo,
		clock:    clock,
	}
}

// Execute updates the rate. Requires the admin role. The default currency's
// rate is definitionally 1 and cannot be repriced.
func (uc *UpdateCurrencyUseCase) Execute(ctx context.Context, input UpdateCurrencyInput) (*UpdateCurrencyOutput, error) {
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
			"the default currency's rate is fixed at 1",
			domainerror.ErrCurrencyIsDefault,
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

	cur := book.FindCurrency(code)
	if cur == nil {
		return nil, domainerror.NewCurrencyError(
			domainerror.KindNotFound,
			domainerror.ErrCodeCurrencyNotFound,
			"currency not found in book",
			domainerror.ErrCurrencyNotFound,
		)
	}

	cur.Rate = input.Rate
	book.UpdatedAt = uc.clock.Now()

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to update currency: %w", err)
	}

	return &UpdateCurrencyOutput{Book: book}, nil
}
