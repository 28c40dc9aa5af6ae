// Package error defines domain-specific errors for the Moneybook application.
package error

import "errors"

// Book domain errors.
var (
	// ErrBookNotFound is returned when a book is not found or soft-deleted.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookNameRequired is returned when the book name is empty.
	ErrBookNameRequired = errors.New("book name is required")

	// ErrNotBookMember is returned when the principal has no relation to the book.
	ErrNotBookMember = errors.New("user is not a member of this book")

	// ErrInsufficientRole is returned when the principal's role is below the
	// minimum required for the operation.
	ErrInsufficientRole = errors.New("insufficient role for this operation")

	// ErrBookMemberNotFound is returned when a member grant does not exist.
	ErrBookMemberNotFound = errors.New("member not found in this book")

	// ErrUserAlreadyBookMember is returned when inviting an existing member.
	ErrUserAlreadyBookMember = errors.New("user is already a member of this book")

	// ErrInvalidRole is returned when a role grant is not assignable.
	ErrInvalidRole = errors.New("invalid member role")

	// ErrCannotGrantOwner is returned when attempting to grant or modify the
	// owner role through membership management instead of ownership transfer.
	ErrCannotGrantOwner = errors.New("ownership is managed via transfer, not grants")

	// ErrBookArchived is returned when mutating an archived book.
	ErrBookArchived = errors.New("book is archived")

	// ErrBookNotArchived is returned when restoring a book that is not archived.
	ErrBookNotArchived = errors.New("book is not archived")

	// ErrBookDeleted is returned when an operation is incompatible with a
	// soft-deleted book.
	ErrBookDeleted = errors.New("book is deleted")

	// ErrBookNotDeleted is returned when undeleting a live book.
	ErrBookNotDeleted = errors.New("book is not deleted")

	// ErrTransferTargetInvalid is returned when the ownership transfer target
	// does not reference a live user.
	ErrTransferTargetInvalid = errors.New("transfer target is not a valid user")
)

// BookErrorCode defines error codes for book errors.
// Format: BOOK-XXYYYY where XX is category and YYYY is specific error.
type BookErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeBookNotFound       BookErrorCode = "BOOK-010001"
	ErrCodeBookMemberNotFound BookErrorCode = "BOOK-010002"

	// Validation errors (02XXXX)
	ErrCodeBookNameRequired BookErrorCode = "BOOK-020001"
	ErrCodeInvalidRole      BookErrorCode = "BOOK-020002"
	ErrCodeTransferTarget   BookErrorCode = "BOOK-020003"

	// Conflict errors (03XXXX)
	ErrCodeUserAlreadyBookMember BookErrorCode = "BOOK-030001"
	ErrCodeBookArchived          BookErrorCode = "BOOK-030002"
	ErrCodeBookNotArchived       BookErrorCode = "BOOK-030003"
	ErrCodeBookDeleted           BookErrorCode = "BOOK-030004"
	ErrCodeBookNotDeleted        BookErrorCode = "BOOK-030005"
	ErrCodeCannotGrantOwner      BookErrorCode = "BOOK-030006"

	// Authorization errors (04XXXX)
	ErrCodeNotBookMember    BookErrorCode = "BOOK-040001"
	ErrCodeInsufficientRole BookErrorCode = "BOOK-040002"
)

// NewBookError creates a DomainError in the book area.
func NewBookError(kind Kind, code BookErrorCode, message string, err error) *DomainError {
	return New(kind, string(code), message, err)
}
