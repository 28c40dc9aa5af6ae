// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/moneybook/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
// InitialBalance is a decimal string in the account's currency.
type CreateAccountRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	Currency       string `json:"currency" binding:"required,min=3,max=8"`
	InitialBalance string `json:"initial_balance"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	Currency       string `json:"currency" binding:"required,min=3,max=8"`
	InitialBalance string `json:"initial_balance"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID             string    `json:"id"`
	BookID         string    `json:"book_id"`
	Name           string    `json:"name"`
	Currency       string    `json:"currency"`
	InitialBalance string    `json:"initial_balance"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// BalanceResponse represents a computed account balance, both in the
// account's native currency and converted to the book's base currency.
type BalanceResponse struct {
	AccountID      string `json:"account_id"`
	Currency       string `json:"currency"`
	CurrentBalance string `json:"current_balance"`
	TotalIncome    string `json:"total_income"`
	TotalExpense   string `json:"total_expense"`
	BalanceInBase  string `json:"balance_in_base"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:             account.ID.String(),
		BookID:         account.BookID.String(),
		Name:           account.Name,
		Currency:       account.Currency,
		InitialBalance: account.InitialBalance.String(),
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}
