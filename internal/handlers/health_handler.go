package handlers

import (
	"net/http"
	"time"

	"sales-ledger/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoints
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// Liveness is the unconditional liveness probe. It answers as long as the
// process is serving, regardless of database state.
//
// Method: GET /health
func (h *HealthCheckHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Readiness checks database connectivity before reporting ready.
//
// Method: GET /health/ready
func (h *HealthCheckHandler) Readiness(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return h.unavailable(c)
	}

	if err := sqlDB.Ping(); err != nil {
		return h.unavailable(c)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthCheckHandler) unavailable(c echo.Context) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(
		errors.KindStorage,
		traceID,
		errors.WithMessage("Service temporarily unavailable"),
	)
	return c.JSON(http.StatusServiceUnavailable, errorResponse)
}
