// Package error defines domain-specific errors for the Moneybook application.
package error

import "errors"

// User lifecycle and authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found or soft-deleted.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when registering with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when an access token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrWeakPassword is returned when the password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrUsernameRequired is returned when registering without a username.
	ErrUsernameRequired = errors.New("username is required")

	// ErrUserNotDeleted is returned when restoring a live user.
	ErrUserNotDeleted = errors.New("user is not deleted")

	// ErrTransferTargetRequired is returned when deleting a user who owns live
	// books without supplying a transfer target.
	ErrTransferTargetRequired = errors.New("a transfer target is required: user owns books")

	// ErrTransferTargetSelf is returned when the transfer target is the user
	// being deleted.
	ErrTransferTargetSelf = errors.New("transfer target must be a different user")
)

// UserErrorCode defines error codes for user errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeUserNotFound UserErrorCode = "USR-010001"

	// Validation errors (02XXXX)
	ErrCodeWeakPassword           UserErrorCode = "USR-020001"
	ErrCodeTransferTargetRequired UserErrorCode = "USR-020002"
	ErrCodeTransferTargetSelf     UserErrorCode = "USR-020003"
	ErrCodeInvalidEmail           UserErrorCode = "USR-020004"
	ErrCodeUsernameRequired       UserErrorCode = "USR-020005"

	// Conflict errors (03XXXX)
	ErrCodeEmailAlreadyExists UserErrorCode = "USR-030001"
	ErrCodeUserNotDeleted     UserErrorCode = "USR-030002"

	// Authorization errors (04XXXX)
	ErrCodeInvalidCredentials UserErrorCode = "USR-040001"
	ErrCodeInvalidToken       UserErrorCode = "USR-040002"
	ErrCodeMissingToken       UserErrorCode = "USR-040003"

	// Throttling errors (05XXXX)
	ErrCodeRateLimited UserErrorCode = "USR-050001"
)

// NewUserError creates a DomainError in the user area.
func NewUserError(kind Kind, code UserErrorCode, message string, err error) *DomainError {
	return New(kind, string(code), message, err)
}
