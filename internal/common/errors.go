package common

import "errors"

// Sentinel errors for the failure kinds the handlers know how to map to a
// status code. Anything else becomes a 500.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUnauthenticated   = errors.New("not authenticated")

	// ErrNotFound deliberately covers both "missing" and "not yours" so a
	// response never leaks whether someone else's entity exists.
	ErrNotFound = errors.New("not found")

	ErrPayloadTooLarge = errors.New("file exceeds the upload size limit")
)

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
