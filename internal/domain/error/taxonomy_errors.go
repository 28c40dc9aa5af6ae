// Package error defines domain-specific errors for the Moneybook application.
package error

import "errors"

// Category, tag and person domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found or soft-deleted.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrTagNotFound is returned when a tag is not found or soft-deleted.
	ErrTagNotFound = errors.New("tag not found")

	// ErrTagNameRequired is returned when the tag name is empty.
	ErrTagNameRequired = errors.New("tag name is required")

	// ErrPersonNotFound is returned when a person is not found or soft-deleted.
	ErrPersonNotFound = errors.New("person not found")

	// ErrPersonNameRequired is returned when the person name is empty.
	ErrPersonNameRequired = errors.New("person name is required")
)

// TaxonomyErrorCode defines error codes for category/tag/person errors.
// Format: TAX-XXYYYY where XX is category and YYYY is specific error.
type TaxonomyErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeCategoryNotFound TaxonomyErrorCode = "TAX-010001"
	ErrCodeTagNotFound      TaxonomyErrorCode = "TAX-010002"
	ErrCodePersonNotFound   TaxonomyErrorCode = "TAX-010003"

	// Validation errors (02XXXX)
	ErrCodeCategoryNameRequired TaxonomyErrorCode = "TAX-020001"
	ErrCodeInvalidCategoryType  TaxonomyErrorCode = "TAX-020002"
	ErrCodeTagNameRequired      TaxonomyErrorCode = "TAX-020003"
	ErrCodePersonNameRequired   TaxonomyErrorCode = "TAX-020004"
)

// NewTaxonomyError creates a DomainError in the category/tag/person area.
func NewTaxonomyError(kind Kind, code TaxonomyErrorCode, message string, err error) *DomainError {
	return New(kind, string(code), message, err)
}
