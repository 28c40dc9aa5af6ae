// Package error defines domain-specific errors for the Moneybook application.
package error

import "errors"

// Currency domain errors.
var (
	// ErrCurrencyNotFound is returned when a currency code is not registered
	// on the book. During balance and stats computation this is an integrity
	// failure, never a silent rate-1 fallback.
	ErrCurrencyNotFound = errors.New("currency not found in book")

	// ErrDuplicateCurrencyCode is returned when adding an existing code.
	ErrDuplicateCurrencyCode = errors.New("currency code already exists in book")

	// ErrInvalidCurrencyRate is returned when the rate is not positive.
	ErrInvalidCurrencyRate = errors.New("currency rate must be positive")

	// ErrCurrencyCodeRequired is returned when the code is empty.
	ErrCurrencyCodeRequired = errors.New("currency code is required")

	// ErrCurrencyIsDefault is returned when deleting or repricing the book's
	// default currency.
	ErrCurrencyIsDefault = errors.New("currency is the book's default currency")

	// ErrCurrencyIsSystem is returned when deleting a fixed system currency.
	ErrCurrencyIsSystem = errors.New("currency is a fixed system currency")

	// ErrCurrencyInUse is returned when a non-deleted account references the currency.
	ErrCurrencyInUse = errors.New("currency is referenced by an account")
)

// CurrencyErrorCode defines error codes for currency errors.
// Format: CUR-XXYYYY where XX is category and YYYY is specific error.
type CurrencyErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeCurrencyNotFound CurrencyErrorCode = "CUR-010001"

	// Validation errors (02XXXX)
	ErrCodeInvalidCurrencyRate  CurrencyErrorCode = "CUR-020001"
	ErrCodeCurrencyCodeRequired CurrencyErrorCode = "CUR-020002"

	// Conflict errors (03XXXX)
	ErrCodeDuplicateCurrencyCode CurrencyErrorCode = "CUR-030001"
	ErrCodeCurrencyIsDefault     CurrencyErrorCode = "CUR-030002"
	ErrCodeCurrencyIsSystem      CurrencyErrorCode = "CUR-030003"
	ErrCodeCurrencyInUse         CurrencyErrorCode = "CUR-030004"

	// Integrity errors (05XXXX)
	ErrCodeCurrencyIntegrity CurrencyErrorCode = "CUR-050001"
)

// NewCurrencyError creates a DomainError in the currency area.
func NewCurrencyError(kind Kind, code CurrencyErrorCode, message string, err error) *DomainError {
	return New(kind, string(code), message, err)
}
