// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/domain/permission"
)

// DeleteTransactionInput represents the input for soft-deleting a transaction.
type DeleteTransactionInput struct {
	BookID        uuid.UUID
	TransactionID uuid.UUID
	RequesterID   uuid.UUID
}

// DeleteTransactionOutput represents the output of deleting a transaction.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase soft-deletes a transaction.
type DeleteTransactionUseCase struct {
	bookRepo        adapter.BookRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(bookRepo adapter.BookRepository, transactionRepo adapter.TransactionRepository, clock adapter.Clock) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		bookRepo:        bookRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute soft-deletes the transaction. Requires the editor role.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
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

	now := uc.clock.Now()
	txn.IsDeleted = true
	txn.DeletedAt = &now
	txn.UpdatedAt = now

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	return &DeleteTransactionOutput{Success: true}, nil
}
