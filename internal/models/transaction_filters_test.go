package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTransactionFilters(t *testing.T) {
	filters := DefaultTransactionFilters()

	assert.Equal(t, SortByDate, filters.SortBy)
	assert.Equal(t, SortOrderDesc, filters.SortOrder)
	assert.Equal(t, DefaultPage, filters.Page)
	assert.Equal(t, DefaultPageSize, filters.PageSize)
	assert.Nil(t, filters.AgeMin)
	assert.Nil(t, filters.DateFrom)
}

func TestTransactionFilters_Offset(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		expected int
	}{
		{"first page", 1, 10, 0},
		{"second page", 2, 10, 10},
		{"large page size", 3, 100, 200},
		{"page size one", 5, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := TransactionFilters{Page: tt.page, PageSize: tt.pageSize}
			assert.Equal(t, tt.expected, filters.Offset())
		})
	}
}

func TestTransactionFilters_SortColumn(t *testing.T) {
	tests := []struct {
		sortBy   string
		expected string
	}{
		{SortByDate, "date"},
		{SortByQuantity, "quantity"},
		{SortByCustomerName, "customer_name"},
		{"", "date"},
		{"bogus", "date"},
	}

	for _, tt := range tests {
		filters := TransactionFilters{SortBy: tt.sortBy}
		assert.Equal(t, tt.expected, filters.SortColumn())
	}
}

func TestTransactionFilters_OrderClause(t *testing.T) {
	asc := TransactionFilters{SortBy: SortByQuantity, SortOrder: SortOrderAsc}
	assert.Equal(t, "quantity ASC", asc.OrderClause())

	desc := TransactionFilters{SortBy: SortByDate, SortOrder: SortOrderDesc}
	assert.Equal(t, "date DESC", desc.OrderClause())

	// Anything that is not asc sorts descending
	unset := TransactionFilters{SortBy: SortByCustomerName}
	assert.Equal(t, "customer_name DESC", unset.OrderClause())
}

func TestIsValidSortBy(t *testing.T) {
	assert.True(t, IsValidSortBy(SortByDate))
	assert.True(t, IsValidSortBy(SortByQuantity))
	assert.True(t, IsValidSortBy(SortByCustomerName))
	assert.False(t, IsValidSortBy("price"))
	assert.False(t, IsValidSortBy(""))
}

func TestIsValidSortOrder(t *testing.T) {
	assert.True(t, IsValidSortOrder(SortOrderAsc))
	assert.True(t, IsValidSortOrder(SortOrderDesc))
	assert.False(t, IsValidSortOrder("ascending"))
}

func TestTransaction_HasTag(t *testing.T) {
	txn := Transaction{Tags: pq.StringArray{"Sale", "New"}}

	assert.True(t, txn.HasTag("Sale"))
	assert.True(t, txn.HasTag("New"))
	assert.False(t, txn.HasTag("Premium"))

	empty := Transaction{}
	assert.False(t, empty.HasTag("Sale"))
}

func TestTransaction_TableName(t *testing.T) {
	txn := &Transaction{}
	assert.Equal(t, "transactions", txn.TableName())
}
