package errors

import (
	"errors"
	"fmt"
)

// AppError is the tagged error variant used throughout the service. Each kind
// carries only the fields relevant to it: validation errors carry the per-field
// detail map, storage and unexpected errors wrap the underlying cause.
type AppError struct {
	Kind    Kind
	Message string
	Details FieldErrors
	Err     error
}

// FieldErrors is a per-field violation map: field path -> violation messages.
type FieldErrors map[string][]string

// Add appends a violation message for a field path.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Has reports whether a field path has any recorded violation.
func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidation creates a validation error carrying the aggregated per-field detail.
func NewValidation(details FieldErrors) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: GetKindMessage(KindValidation),
		Details: details,
	}
}

// NewNotFound creates a routing not-found error.
func NewNotFound() *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: GetKindMessage(KindNotFound),
	}
}

// NewStorage wraps a storage-layer failure. The cause is kept for server-side
// logging only and never serialized to the client.
func NewStorage(err error) *AppError {
	return &AppError{
		Kind:    KindStorage,
		Message: GetKindMessage(KindStorage),
		Err:     err,
	}
}

// NewUnexpected wraps anything that does not match a known kind.
func NewUnexpected(err error) *AppError {
	return &AppError{
		Kind:    KindUnexpected,
		Message: GetKindMessage(KindUnexpected),
		Err:     err,
	}
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
