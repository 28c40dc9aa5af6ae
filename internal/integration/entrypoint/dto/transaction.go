// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/moneybook/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Amount is a decimal string in the account's currency and Date
// uses the "2006-01-02" layout.
type CreateTransactionRequest struct {
	AccountID   string   `json:"account_id" binding:"required,uuid"`
	CategoryID  string   `json:"category_id" binding:"required,uuid"`
	Amount      string   `json:"amount" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=income expense loan"`
	Date        string   `json:"date" binding:"required"`
	Description string   `json:"description" binding:"omitempty,max=255"`
	PersonIDs   []string `json:"person_ids,omitempty"`
	TagIDs      []string `json:"tag_ids,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction
// update. The full transaction is replaced.
type UpdateTransactionRequest struct {
	AccountID   string   `json:"account_id" binding:"required,uuid"`
	CategoryID  string   `json:"category_id" binding:"required,uuid"`
	Amount      string   `json:"amount" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=income expense loan"`
	Date        string   `json:"date" binding:"required"`
	Description string   `json:"description" binding:"omitempty,max=255"`
	PersonIDs   []string `json:"person_ids,omitempty"`
	TagIDs      []string `json:"tag_ids,omitempty"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	BookID      string    `json:"book_id"`
	AccountID   string    `json:"account_id"`
	CategoryID  string    `json:"category_id"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	PersonIDs   []string  `json:"person_ids,omitempty"`
	TagIDs      []string  `json:"tag_ids,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	persons := make([]string, 0, len(txn.PersonIDs))
	for _, id := range txn.PersonIDs {
		persons = append(persons, id.String())
	}

	tags := make([]string, 0, len(txn.TagIDs))
	for _, id := range txn.TagIDs {
		tags = append(tags, id.String())
	}

	return TransactionResponse{
		ID:          txn.ID.String(),
		BookID:      txn.BookID.String(),
		AccountID:   txn.AccountID.String(),
		CategoryID:  txn.CategoryID.String(),
		Amount:      txn.Amount.String(),
		Type:        string(txn.Type),
		Date:        txn.Date.Format("2006-01-02"),
		Description: txn.Description,
		PersonIDs:   persons,
		TagIDs:      tags,
		CreatedBy:   txn.CreatedBy.String(),
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}
