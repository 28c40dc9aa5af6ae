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

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	BookID         uuid.UUID
	RequesterID    uuid.UUID
	Name           string
	Currency       string
	InitialBalance decimal.Decimal
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	bookRepo    adapter.BookRepository
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(bookRepo adapter.BookRepository, accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		bookRepo:    bookRepo,
		accountRepo: accountRepo,
	}
}

// Execute creates the account. Requires the editor role; the currency must
// already be registered on the book.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, true)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpWriteEntities); err != nil {
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

	account := entity.NewAccount(book.ID, input.Name, input.Currency, input.InitialBalance)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: account}, nil
}
