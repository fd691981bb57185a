package services

import (
	"sales-ledger/internal/dto"
	"sales-ledger/internal/models"
)

// TransactionQueryServiceInterface defines the contract for the paginated,
// filterable transaction listing operation.
type TransactionQueryServiceInterface interface {
	ListTransactions(filters models.TransactionFilters) (*dto.ListTransactionsResponse, error)
}

// TransactionGeneratorInterface defines the contract for sample data generation
type TransactionGeneratorInterface interface {
	Generate(count int) []models.Transaction
}

// MetricsRecorderInterface defines the contract for recording query metrics
type MetricsRecorderInterface interface {
	RecordQuery(status string, durationMs float64)
	RecordResultCount(count int)
}
