package handlers

import (
	"log/slog"

	"sales-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client-caused errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.KindValidation, errors.WithDetails(fieldErrors))
//    - Routing errors: SendError(c, errors.KindNotFound)
//
// 2. SendSystemError - For storage/internal errors (500 responses)
//    Use cases:
//    - Storage errors from repositories
//    - Unexpected errors that should not expose internal details to clients
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions
//    - return err without wrapping - Use SendSystemError to protect internal details

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, kind errors.Kind, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(kind, traceID, opts...)
	return c.JSON(errors.GetHTTPStatus(kind), errorResponse)
}

// SendAppError maps a tagged application error to its response. Storage and
// unexpected causes are logged server-side and never serialized.
func SendAppError(c echo.Context, appErr *errors.AppError) error {
	traceID := getTraceID(c)

	if appErr.Err != nil {
		slog.Error("request failed",
			"trace_id", traceID,
			"kind", string(appErr.Kind),
			"path", c.Request().URL.Path,
			"error", appErr.Err.Error(),
		)
	}

	return c.JSON(errors.GetHTTPStatus(appErr.Kind), errors.FromAppError(appErr, traceID))
}

// SendSystemError wraps an internal error with a generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	return SendAppError(c, errors.NewUnexpected(err))
}
