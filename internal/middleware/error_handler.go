package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"sales-ledger/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by kind, endpoint, and status",
		},
		[]string{"kind", "endpoint", "status"},
	)
)

// CustomHTTPErrorHandler is a custom error handler for Echo that formats
// anything escaping a handler as the standardized error envelope. Client-caused
// failures keep their detail; everything else gets the generic message so no
// internal detail leaks.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var errorResponse *errors.ErrorResponse
	var httpStatus int
	var kind errors.Kind

	if appErr, ok := errors.AsAppError(err); ok {
		kind = appErr.Kind
		errorResponse = errors.FromAppError(appErr, traceID)
		httpStatus = errors.GetHTTPStatus(appErr.Kind)
	} else if echoErr, ok := err.(*echo.HTTPError); ok {
		kind, httpStatus = mapHTTPStatus(echoErr.Code)
		errorResponse = errors.NewErrorResponse(kind, traceID)
		if httpStatus < http.StatusInternalServerError && httpStatus != http.StatusNotFound {
			errorResponse.Error = fmt.Sprintf("%v", echoErr.Message)
		}
	} else if validationErrs, ok := err.(validator.ValidationErrors); ok {
		kind = errors.KindValidation
		fieldErrors := errors.FieldErrors{}
		for _, fieldErr := range validationErrs {
			fieldErrors.Add(fieldErr.Field(), fieldErr.Tag())
		}
		errorResponse = errors.NewErrorResponse(kind, traceID, errors.WithDetails(fieldErrors))
		httpStatus = http.StatusBadRequest
	} else {
		kind = errors.KindUnexpected
		errorResponse, _ = errors.WrapSystemError(err, traceID)
		httpStatus = http.StatusInternalServerError
	}

	logLevel := slog.LevelWarn
	if httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"kind", string(kind),
		"status", httpStatus,
		"message", errorResponse.Error,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(
		string(kind),
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

// mapHTTPStatus maps an Echo HTTP error code to an error kind and the status
// to respond with. Unrecognized codes collapse to 500 with the generic message.
func mapHTTPStatus(status int) (errors.Kind, int) {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return errors.KindValidation, status
	case http.StatusNotFound:
		return errors.KindNotFound, status
	case http.StatusTooManyRequests:
		return errors.KindUnexpected, status
	case http.StatusServiceUnavailable:
		return errors.KindStorage, status
	default:
		return errors.KindUnexpected, http.StatusInternalServerError
	}
}
