// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeLoan    TransactionType = "loan"
)

// IsValidTransactionType reports whether t is a known transaction type.
func IsValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense || t == TransactionTypeLoan
}

// Transaction represents a financial transaction in a book. Amount is always
// a positive magnitude; the type determines its direction.
type Transaction struct {
	ID          uuid.UUID
	BookID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Type        TransactionType
	Date        time.Time
	Description string
	PersonIDs   []uuid.UUID
	TagIDs      []uuid.UUID
	CreatedBy   uuid.UUID
	IsDeleted   bool
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	bookID, accountID, categoryID uuid.UUID,
	amount decimal.Decimal,
	transactionType TransactionType,
	date time.Time,
	description string,
	createdBy uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		BookID:      bookID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      amount,
		Type:        transactionType,
		Date:        date,
		Description: description,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
