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

// UpdateTransactionInput represents the input for updating a transaction.
type UpdateTransactionInput struct {
	BookID        uuid.UUID
	TransactionID uuid.UUID
	RequesterID   uuid.UUID
	AccountID     uuid.UUID
	CategoryID    uuid.UUID
	Amount        decimal.Decimal
	Type          entity.TransactionType
	Date          time.Time
	Description   string
	PersonIDs     []uuid.UUID
	TagIDs        []uuid.UUID
}

// UpdateTransactionOutput represents the output of updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction updates.
type UpdateTransactionUseCase struct {
	bookRepo        adapter.BookRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	bookRepo adapter.BookRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		bookRepo:        bookRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute updates the transaction. Requires the editor role.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, true)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpWriteEntities); err != nil {
		return nil, err
	}

	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID, false)
	if err != nil {
		return nil, err
	}
	if txn == nil || txn.BookID != book.ID {
		return nil, domainerror.NewTransactionError(
			domainerror.KindNotFound,
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
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

	txn.AccountID = input.AccountID
	txn.CategoryID = input.CategoryID
	txn.Amount = input.Amount
	txn.Type = input.Type
	txn.Date = input.Date
	txn.Description = input.Description
	txn.PersonIDs = input.PersonIDs
	txn.TagIDs = input.TagIDs
	txn.UpdatedAt = uc.clock.Now()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
