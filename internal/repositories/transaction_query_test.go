package repositories

import (
	"testing"
	"time"

	"sales-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func exprs(conditions []condition) []string {
	out := make([]string, len(conditions))
	for i, c := range conditions {
		out[i] = c.expr
	}
	return out
}

func TestBuildConditions_EmptySpecContributesNothing(t *testing.T) {
	conditions := buildConditions(models.DefaultTransactionFilters())

	// Universal match: no conditions, no empty AND group
	assert.Empty(t, conditions)
}

func TestBuildConditions_Search(t *testing.T) {
	filters := models.TransactionFilters{Search: "smith"}

	conditions := buildConditions(filters)

	require.Len(t, conditions, 1)
	assert.Equal(t, "(customer_name ILIKE ? OR phone_number ILIKE ?)", conditions[0].expr)
	assert.Equal(t, []interface{}{"%smith%", "%smith%"}, conditions[0].args)
}

func TestBuildConditions_SetMemberships(t *testing.T) {
	filters := models.TransactionFilters{
		CustomerRegions:   []string{"North", "South"},
		Genders:           []string{"Female"},
		ProductCategories: []string{"Electronics"},
		PaymentMethods:    []string{"Cash", "Credit Card"},
	}

	conditions := buildConditions(filters)

	assert.Equal(t, []string{
		"customer_region IN ?",
		"gender IN ?",
		"product_category IN ?",
		"payment_method IN ?",
	}, exprs(conditions))
}

func TestBuildConditions_AgeBoundsAreIndependent(t *testing.T) {
	onlyMin := buildConditions(models.TransactionFilters{AgeMin: intPtr(18)})
	require.Len(t, onlyMin, 1)
	assert.Equal(t, "age >= ?", onlyMin[0].expr)
	assert.Equal(t, []interface{}{18}, onlyMin[0].args)

	onlyMax := buildConditions(models.TransactionFilters{AgeMax: intPtr(65)})
	require.Len(t, onlyMax, 1)
	assert.Equal(t, "age <= ?", onlyMax[0].expr)

	both := buildConditions(models.TransactionFilters{AgeMin: intPtr(18), AgeMax: intPtr(65)})
	assert.Len(t, both, 2)
}

func TestBuildConditions_DateBounds(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	conditions := buildConditions(models.TransactionFilters{
		DateFrom: timePtr(from),
		DateTo:   timePtr(to),
	})

	require.Len(t, conditions, 2)
	assert.Equal(t, "date >= ?", conditions[0].expr)
	assert.Equal(t, []interface{}{from}, conditions[0].args)
	assert.Equal(t, "date <= ?", conditions[1].expr)
}

func TestBuildConditions_TagsUseArrayOverlap(t *testing.T) {
	conditions := buildConditions(models.TransactionFilters{Tags: []string{"Sale", "New"}})

	require.Len(t, conditions, 1)
	assert.Equal(t, "tags && ?", conditions[0].expr)
	require.Len(t, conditions[0].args, 1)
}

func TestBuildConditions_AllDimensionsCombineByConjunction(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	filters := models.TransactionFilters{
		Search:            "smith",
		CustomerRegions:   []string{"North"},
		Genders:           []string{"Male"},
		ProductCategories: []string{"Clothing"},
		PaymentMethods:    []string{"Cash"},
		Tags:              []string{"Sale"},
		AgeMin:            intPtr(20),
		AgeMax:            intPtr(40),
		DateFrom:          timePtr(from),
		DateTo:            timePtr(from.AddDate(0, 6, 0)),
	}

	conditions := buildConditions(filters)

	assert.Len(t, conditions, 10)
}
