package handlers

import (
	"net/http"

	"sales-ledger/internal/errors"
	"sales-ledger/internal/services"
	"sales-ledger/internal/validation"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction listing HTTP requests
type TransactionHandler struct {
	queryService services.TransactionQueryServiceInterface
	validator    *validation.TransactionQueryValidator
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(queryService services.TransactionQueryServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		queryService: queryService,
		validator:    validation.NewTransactionQueryValidator(),
	}
}

// ListTransactions retrieves a paginated, filtered page of transactions.
//
// Method: GET /api/transactions
//
// Query parameters:
//   - search: case-insensitive substring match on customer name or phone number
//   - customerRegions, genders, productCategories, tags, paymentMethods: comma-separated value sets
//   - ageMin, ageMax: inclusive age bounds (integers >= 0, min <= max)
//   - dateFrom, dateTo: inclusive date bounds (YYYY-MM-DD)
//   - sortBy: date | quantity | customerName (default date)
//   - sortOrder: asc | desc (default desc)
//   - page: 1-based page number (default 1)
//   - pageSize: rows per page, 1-100 (default 10)
//
// Validation runs before any storage access: a request with invalid parameters
// issues zero queries.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := h.validator.Validate(c.QueryParams())
	if err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			return SendAppError(c, appErr)
		}
		return SendSystemError(c, err)
	}

	result, err := h.queryService.ListTransactions(filters)
	if err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			return SendAppError(c, appErr)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
