// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	"github.com/moneybook/backend/internal/domain/ledger"
	"github.com/moneybook/backend/internal/domain/permission"
)

// GetBalanceInput represents the input for computing an account balance.
type GetBalanceInput struct {
	BookID      uuid.UUID
	AccountID   uuid.UUID
	RequesterID uuid.UUID
}

// GetBalanceOutput represents the computed balance of an account, both in
// the account's native currency and converted to the book's base currency.
type GetBalanceOutput struct {
	Account       *entity.Account
	Balance       entity.BalanceSummary
	BalanceInBase decimal.Decimal
}

// GetBalanceUseCase computes an account balance from a single consistent
// snapshot of its transactions.
type GetBalanceUseCase struct {
	bookRepo        adapter.BookRepository
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(
	bookRepo adapter.BookRepository,
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		bookRepo:        bookRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the balance. Requires membership.
func (uc *GetBalanceUseCase) Execute(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, false)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpReadBook); err != nil {
		return nil, err
	}

	account, err := findAccount(ctx, uc.accountRepo, input.AccountID, book.ID)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByAccount(ctx, account.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	balance := ledger.ComputeAccountBalance(account, transactions)

	inBase, err := ledger.ToBaseCurrency(balance.CurrentBalance, account.Currency, book)
	if err != nil {
		return nil, err
	}

	return &GetBalanceOutput{
		Account:       account,
		Balance:       balance,
		BalanceInBase: inBase,
	}, nil
}
