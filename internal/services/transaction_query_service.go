package services

import (
	"log/slog"
	"sync"
	"time"

	"sales-ledger/internal/dto"
	apperrors "sales-ledger/internal/errors"
	"sales-ledger/internal/models"
	"sales-ledger/internal/repositories"
)

type transactionQueryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewTransactionQueryService creates a new transaction query service
func NewTransactionQueryService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionQueryServiceInterface {
	return &transactionQueryService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// ListTransactions fetches one page of matching transactions and the
// unpaginated match count under the same filter spec. The two reads are
// independent and run concurrently; the service waits for both and aborts with
// a storage error when either fails, never returning a partial result.
func (s *transactionQueryService) ListTransactions(filters models.TransactionFilters) (*dto.ListTransactionsResponse, error) {
	started := time.Now()

	var (
		wg           sync.WaitGroup
		transactions []models.Transaction
		total        int64
		findErr      error
		countErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		transactions, findErr = s.transactionRepo.Find(filters)
	}()
	go func() {
		defer wg.Done()
		total, countErr = s.transactionRepo.Count(filters)
	}()
	wg.Wait()

	if findErr != nil {
		return nil, s.storageFailure("fetch", filters, findErr, started)
	}
	if countErr != nil {
		return nil, s.storageFailure("count", filters, countErr, started)
	}

	s.metrics.RecordQuery("success", float64(time.Since(started).Milliseconds()))
	s.metrics.RecordResultCount(len(transactions))

	return &dto.ListTransactionsResponse{
		Success: true,
		Data:    dto.FromTransactions(transactions),
		Meta: dto.PaginationMeta{
			TotalItems:  total,
			TotalPages:  totalPages(total, filters.PageSize),
			CurrentPage: filters.Page,
			PageSize:    filters.PageSize,
		},
	}, nil
}

func (s *transactionQueryService) storageFailure(operation string, filters models.TransactionFilters, err error, started time.Time) error {
	s.metrics.RecordQuery("error", float64(time.Since(started).Milliseconds()))
	slog.Error("transaction query failed",
		"operation", operation,
		"sort_by", filters.SortBy,
		"page", filters.Page,
		"page_size", filters.PageSize,
		"error", err.Error(),
	)
	return apperrors.NewStorage(err)
}

// totalPages computes ceil(totalItems / pageSize); zero items means zero pages.
func totalPages(totalItems int64, pageSize int) int {
	if totalItems == 0 {
		return 0
	}
	return int((totalItems + int64(pageSize) - 1) / int64(pageSize))
}
