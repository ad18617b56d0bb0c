package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrApplicationNotFound means no club application exists for the id.
	ErrApplicationNotFound = errors.New("application not found")

	// ErrConflictingReview means the application already left pending, either
	// before the call or because a concurrent reviewer won the race. The
	// caller should refetch and re-decide rather than retry.
	ErrConflictingReview = errors.New("application has already been reviewed")

	// ErrNotAdmin means the caller's identity resolved but lacks the admin role.
	ErrNotAdmin = errors.New("caller is not an administrator")

	ErrAuthenticationRequired = errors.New("authentication required")
	ErrSessionExpired         = errors.New("session has expired")
	ErrRateLimitExceeded      = errors.New("rate limit exceeded")
	ErrSecurityTokenMissing   = errors.New("security token missing or invalid")
)

// ValidationError marks bad input that is never retried and is rejected
// before any state mutation.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
