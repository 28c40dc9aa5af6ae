// Package error defines domain-specific errors for the Moneybook application.
package error

import "errors"

// Kind classifies a domain failure. Every error surfaced by the domain and
// application layers carries exactly one kind so callers (and the transport
// layer) can react without string matching.
type Kind string

const (
	// KindNotFound indicates a referenced record is absent or soft-deleted.
	KindNotFound Kind = "not_found"

	// KindForbidden indicates the principal is not allowed to perform the operation.
	KindForbidden Kind = "forbidden"

	// KindConflict indicates the request contradicts current state
	// (duplicate currency code, currency in use, incompatible transition).
	KindConflict Kind = "conflict"

	// KindValidation indicates malformed or missing input.
	KindValidation Kind = "validation"

	// KindIntegrity indicates inconsistent stored data, e.g. an account
	// referencing a currency absent from its book. Never silently tolerated.
	KindIntegrity Kind = "integrity"
)

// DomainError represents a typed domain failure with a stable code.
type DomainError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// New creates a new DomainError with the given kind, code and message.
func New(kind Kind, code, message string, err error) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// KindOf returns the kind of err when it wraps a DomainError, or an empty kind.
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err wraps a DomainError of the given kind.
func IsKind(err error, kind Kind) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Kind == kind
}
