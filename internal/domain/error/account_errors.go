// Package error defines domain-specific errors for the Moneybook application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found or soft-deleted.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountNameRequired is returned when the account name is empty.
	ErrAccountNameRequired = errors.New("account name is required")

	// ErrAccountCurrencyUnknown is returned when the account references a
	// currency code absent from its book.
	ErrAccountCurrencyUnknown = errors.New("account currency is not registered on the book")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeAccountNotFound AccountErrorCode = "ACC-010001"

	// Validation errors (02XXXX)
	ErrCodeAccountNameRequired    AccountErrorCode = "ACC-020001"
	ErrCodeAccountCurrencyUnknown AccountErrorCode = "ACC-020002"
)

// NewAccountError creates a DomainError in the account area.
func NewAccountError(kind Kind, code AccountErrorCode, message string, err error) *DomainError {
	return New(kind, string(code), message, err)
}
