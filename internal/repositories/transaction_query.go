package repositories

import (
	"sales-ledger/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// condition is a single independent predicate over transaction columns.
// Conditions combine by conjunction only.
type condition struct {
	expr string
	args []interface{}
}

// conditionRule pairs a presence check with a condition constructor. The rules
// are folded in order over the filter spec; each contributes at most one
// condition, included only when its dimension is present.
type conditionRule struct {
	applies func(models.TransactionFilters) bool
	build   func(models.TransactionFilters) condition
}

var filterRules = []conditionRule{
	{
		applies: func(f models.TransactionFilters) bool { return f.Search != "" },
		build: func(f models.TransactionFilters) condition {
			term := "%" + f.Search + "%"
			return condition{
				expr: "(customer_name ILIKE ? OR phone_number ILIKE ?)",
				args: []interface{}{term, term},
			}
		},
	},
	{
		applies: func(f models.TransactionFilters) bool { return len(f.CustomerRegions) > 0 },
		build: func(f models.TransactionFilters) condition {
			return condition{expr: "customer_region IN ?", args: []interface{}{f.CustomerRegions}}
		},
	},
	{
		applies: func(f models.TransactionFilters) bool { return len(f.Genders) > 0 },
		build: func(f models.TransactionFilters) condition {
			return condition{expr: "gender IN ?", args: []interface{}{f.Genders}}
		},
	},
	{
		applies: func(f models.TransactionFilters) bool { return f.AgeMin != nil },
		build: func(f models.TransactionFilters) condition {
			return condition{expr: "age >= ?", args: []interface{}{*f.AgeMin}}
		},
	},
	{
		applies: func(f models.TransactionFilters) bool { return f.AgeMax != nil },
		build: func(f models.TransactionFilters) condition {
			return condition{expr: "age <= ?", args: []interface{}{*f.AgeMax}}
		},
	},
	{
		applies: func(f models.TransactionFilters) bool { return len(f.ProductCategories) > 0 },
		build: func(f models.TransactionFilters) condition {
			return condition{expr: "product_category IN ?", args: []interface{}{f.ProductCategories}}
		},
	},
	{
		applies: func(f models.TransactionFilters) bool { return len(f.PaymentMethods) > 0 },
		build: func(f models.TransactionFilters) condition {
			return condition{expr: "payment_method IN ?", args: []interface{}{f.PaymentMethods}}
		},
	},
	{
		applies: func(f models.TransactionFilters) bool { return f.DateFrom != nil },
		build: func(f models.TransactionFilters) condition {
			return condition{expr: "date >= ?", args: []interface{}{*f.DateFrom}}
		},
	},
	{
		applies: func(f models.TransactionFilters) bool { return f.DateTo != nil },
		build: func(f models.TransactionFilters) condition {
			return condition{expr: "date <= ?", args: []interface{}{*f.DateTo}}
		},
	},
	{
		// Overlap, not containment: a row matches when it shares at least one
		// tag with the requested set.
		applies: func(f models.TransactionFilters) bool { return len(f.Tags) > 0 },
		build: func(f models.TransactionFilters) condition {
			return condition{expr: "tags && ?", args: []interface{}{pq.Array(f.Tags)}}
		},
	},
}

// buildConditions folds the rule list over a filter spec into the immutable
// condition list for this request.
func buildConditions(filters models.TransactionFilters) []condition {
	conditions := make([]condition, 0, len(filterRules))
	for _, rule := range filterRules {
		if rule.applies(filters) {
			conditions = append(conditions, rule.build(filters))
		}
	}
	return conditions
}

// applyFilters chains the contributed conditions onto a query. With zero
// conditions the query is left untouched, which is the universal match; no
// empty AND group is ever emitted.
func applyFilters(query *gorm.DB, filters models.TransactionFilters) *gorm.DB {
	for _, cond := range buildConditions(filters) {
		query = query.Where(cond.expr, cond.args...)
	}
	return query
}
