// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/domain/permission"
)

// UpdateAccountInput represents the input for updating an account.
type UpdateAccountInput struct {
	BookID         uuid.UUID
	AccountID      uuid.UUID
	RequesterID    uuid.UUID
	Name           string
	Currency       string
	InitialBalance decimal.Decimal
}

// UpdateAccountOutput represents the output of updating an account.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account updates.
type UpdateAccountUseCase struct {
	bookRepo    adapter.BookRepository
	accountRepo adapter.AccountRepository
	clock       adapter.Clock
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(bookRepo adapter.BookRepository, accountRepo adapter.AccountRepository, clock adapter.Clock) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		bookRepo:    bookRepo,
		accountRepo: accountRepo,
		clock:       clock,
	}
}

// Execute updates the account. Requires the editor role.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, true)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpWriteEntities); err != nil {
		return nil, err
	}

	account, err := findAccount(ctx, uc.accountRepo, input.AccountID, book.ID)
	if err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.KindValidation,
			domainerror.ErrCodeAccountNameRequired,
			"account name is required",
			domainerror.ErrAccountNameRequired,
		)
	}

	if book.FindCurrency(input.Currency) == nil {
		return nil, domainerror.NewAccountError(
			domainerror.KindValidation,
			domainerror.ErrCodeAccountCurrencyUnknown,
			"currency "+input.Currency+" is not registered on the book",
			domainerror.ErrAccountCurrencyUnknown,
		)
	}

	account.Name = input.Name
	account.Currency = input.Currency
	account.InitialBalance = input.InitialBalance
	account.UpdatedAt = uc.clock.Now()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: account}, nil
}
