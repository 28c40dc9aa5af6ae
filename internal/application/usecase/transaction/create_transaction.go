// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/domain/permission"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Type        entity.TransactionType
	Date        time.Time
	Description string
	PersonIDs   []uuid.UUID
	TagIDs      []uuid.UUID
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	bookRepo        adapter.BookRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	bookRepo adapter.BookRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		bookRepo:        bookRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute creates the transaction. Requires the editor role. Amount is a
// positive magnitude; the type carries the direction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, true)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpWriteEntities); err != nil {
		return nil, err
	}

	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.KindValidation,
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income', 'expense' or 'loan'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.KindValidation,
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if err := validateReferences(ctx, uc.accountRepo, uc.categoryRepo, book.ID, input.AccountID, input.CategoryID, input.Type); err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(
		book.ID, input.AccountID, input.CategoryID,
		input.Amount, input.Type, input.Date,
		input.Description, input.RequesterID,
	)
	txn.PersonIDs = input.PersonIDs
	txn.TagIDs = input.TagIDs

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}
