package repositories

import (
	"sales-ledger/internal/models"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations.
// Find and Count accept the same filter spec and must agree on which rows match,
// so a paginated page and its unpaginated total always describe the same result set.
type TransactionRepositoryInterface interface {
	Find(filters models.TransactionFilters) ([]models.Transaction, error)
	Count(filters models.TransactionFilters) (int64, error)
	CreateBatch(transactions []models.Transaction) error
}
