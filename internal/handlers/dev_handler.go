package handlers

import (
	"net/http"
	"strconv"

	"sales-ledger/internal/repositories"
	"sales-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedCount = 100
	maxSeedCount     = 10000
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.TransactionGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(transactionRepo repositories.TransactionRepositoryInterface) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       services.NewTransactionGenerator(),
	}
}

// SeedTransactions generates realistic sample transaction data.
//
// Method: POST /dev/seed
// Environment: Development only (the route is not registered elsewhere)
//
// Query parameters:
//   - count: number of transactions to generate (default 100, max 10000)
func (h *DevHandler) SeedTransactions(c echo.Context) error {
	count := defaultSeedCount
	if raw := c.QueryParam("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "count must be a positive integer")
		}
		count = parsed
	}
	if count > maxSeedCount {
		count = maxSeedCount
	}

	transactions := h.generator.Generate(count)
	if err := h.transactionRepo.CreateBatch(transactions); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":              "sample data generated",
		"transactions_created": len(transactions),
	})
}
