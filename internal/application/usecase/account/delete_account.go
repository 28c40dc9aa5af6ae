// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/permission"
)

// DeleteAccountInput represents the input for soft-deleting an account.
type DeleteAccountInput struct {
	BookID      uuid.UUID
	AccountID   uuid.UUID
	RequesterID uuid.UUID
}

// DeleteAccountOutput represents the output of deleting an account.
type DeleteAccountOutput struct {
	Success bool
}

// DeleteAccountUseCase soft-deletes an account.
type DeleteAccountUseCase struct {
	bookRepo    adapter.BookRepository
	accountRepo adapter.AccountRepository
	clock       adapter.Clock
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(bookRepo adapter.BookRepository, accountRepo adapter.AccountRepository, clock adapter.Clock) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		bookRepo:    bookRepo,
		accountRepo: accountRepo,
		clock:       clock,
	}
}

// Execute soft-deletes the account. Requires the editor role.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
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

	now := uc.clock.Now()
	account.IsDeleted = true
	account.DeletedAt = &now
	account.UpdatedAt = now

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	return &DeleteAccountOutput{Success: true}, nil
}
