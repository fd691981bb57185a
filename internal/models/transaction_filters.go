package models

import "time"

// Sort keys accepted by the listing endpoint. Validation rejects anything else,
// so storage-layer code only ever sees these values.
const (
	SortByDate         = "date"
	SortByQuantity     = "quantity"
	SortByCustomerName = "customerName"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// TransactionFilters describes one request's validated filter, sort and page
// settings. It is constructed once per request by the query validator and
// never mutated afterwards. A nil pointer or empty slice means "no restriction
// on that dimension", never "match nothing".
type TransactionFilters struct {
	Search            string
	CustomerRegions   []string
	Genders           []string
	ProductCategories []string
	PaymentMethods    []string
	Tags              []string
	AgeMin            *int
	AgeMax            *int
	DateFrom          *time.Time
	DateTo            *time.Time
	SortBy            string
	SortOrder         string
	Page              int
	PageSize          int
}

// DefaultTransactionFilters returns a filter spec with every optional dimension
// absent and the documented defaults applied.
func DefaultTransactionFilters() TransactionFilters {
	return TransactionFilters{
		SortBy:    SortByDate,
		SortOrder: SortOrderDesc,
		Page:      DefaultPage,
		PageSize:  DefaultPageSize,
	}
}

// Offset returns the number of rows to skip for the requested page.
func (f TransactionFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// SortColumn maps the sort key enumeration to the stored column name.
// Unknown keys fall back to the date column.
func (f TransactionFilters) SortColumn() string {
	switch f.SortBy {
	case SortByQuantity:
		return "quantity"
	case SortByCustomerName:
		return "customer_name"
	case SortByDate:
		return "date"
	default:
		return "date"
	}
}

// OrderClause returns the full ORDER BY expression for the filter spec.
func (f TransactionFilters) OrderClause() string {
	direction := "DESC"
	if f.SortOrder == SortOrderAsc {
		direction = "ASC"
	}
	return f.SortColumn() + " " + direction
}

// IsValidSortBy checks if the sort key is a member of the closed enumeration.
func IsValidSortBy(sortBy string) bool {
	switch sortBy {
	case SortByDate, SortByQuantity, SortByCustomerName:
		return true
	default:
		return false
	}
}

// IsValidSortOrder checks if the sort order is a member of the closed enumeration.
func IsValidSortOrder(sortOrder string) bool {
	switch sortOrder {
	case SortOrderAsc, SortOrderDesc:
		return true
	default:
		return false
	}
}
