package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorResponse represents the standardized API error response structure
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Details FieldErrors `json:"details,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails attaches per-field violation detail to the error response
func WithDetails(details FieldErrors) ErrorOption {
	return func(er *ErrorResponse) {
		er.Details = details
	}
}

// WithMessage overrides the default message for the error kind
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error = message
	}
}

// NewErrorResponse creates a standardized error response for the given kind.
// Optional details can be added using functional options.
func NewErrorResponse(kind Kind, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Success: false,
		Error:   GetKindMessage(kind),
		TraceID: traceID,
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// FromAppError converts a tagged application error into its wire representation.
// Only validation errors expose their detail payload.
func FromAppError(appErr *AppError, traceID string) *ErrorResponse {
	response := &ErrorResponse{
		Success: false,
		Error:   appErr.Message,
		TraceID: traceID,
	}
	if appErr.Kind == KindValidation {
		response.Details = appErr.Details
	}
	return response
}

// WrapSystemError wraps an internal error with a generic message. The internal
// error is returned separately for server-side logging and never serialized.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(KindUnexpected, traceID), err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%t] %s (trace: %s)", er.Success, er.Error, er.TraceID)
}
