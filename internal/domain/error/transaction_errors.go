// Package error defines domain-specific errors for the Moneybook application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the amount is not positive.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be positive")

	// ErrTransactionCategoryMismatch is returned when the transaction type does
	// not match the referenced category's type.
	ErrTransactionCategoryMismatch = errors.New("transaction type does not match category type")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-010001"

	// Validation errors (02XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-020001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-020002"
	ErrCodeCategoryTypeMismatch     TransactionErrorCode = "TXN-020003"
)

// NewTransactionError creates a DomainError in the transaction area.
func NewTransactionError(kind Kind, code TransactionErrorCode, message string, err error) *DomainError {
	return New(kind, string(code), message, err)
}
