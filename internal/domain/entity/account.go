// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a money account inside a book. Its currency must
// reference a code registered on the owning book.
type Account struct {
	ID             uuid.UUID
	BookID         uuid.UUID
	Name           string
	Currency       string
	InitialBalance decimal.Decimal
	IsDeleted      bool
	DeletedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(bookID uuid.UUID, name, currency string, initialBalance decimal.Decimal) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:             uuid.New(),
		BookID:         bookID,
		Name:           name,
		Currency:       currency,
		InitialBalance: initialBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// BalanceSummary holds the computed balance figures of a single account,
// expressed in the account's native currency.
type BalanceSummary struct {
	CurrentBalance decimal.Decimal
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
}
