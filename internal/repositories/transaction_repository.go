package repositories

import (
	"fmt"

	"sales-ledger/internal/models"

	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Find retrieves one page of transactions matching the filter spec, ordered by
// the requested sort key.
func (r *transactionRepository) Find(filters models.TransactionFilters) ([]models.Transaction, error) {
	var transactions []models.Transaction

	query := applyFilters(r.db.Model(&models.Transaction{}), filters)

	if err := query.
		Order(filters.OrderClause()).
		Offset(filters.Offset()).
		Limit(filters.PageSize).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, nil
}

// Count returns the unpaginated number of transactions matching the filter spec.
func (r *transactionRepository) Count(filters models.TransactionFilters) (int64, error) {
	var total int64

	query := applyFilters(r.db.Model(&models.Transaction{}), filters)

	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	return total, nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}
