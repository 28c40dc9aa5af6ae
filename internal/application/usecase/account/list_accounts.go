// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	"github.com/moneybook/backend/internal/domain/permission"
)

// ListAccountsInput represents the input for listing a book's accounts.
type ListAccountsInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
}

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []*entity.Account
}

// ListAccountsUseCase handles listing the accounts of a book.
type ListAccountsUseCase struct {
	bookRepo    adapter.BookRepository
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(bookRepo adapter.BookRepository, accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		bookRepo:    bookRepo,
		accountRepo: accountRepo,
	}
}

// Execute lists the book's non-deleted accounts. Requires membership.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID, false)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpReadBook); err != nil {
		return nil, err
	}

	accounts, err := uc.accountRepo.FindByBook(ctx, book.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return &ListAccountsOutput{Accounts: accounts}, nil
}
