package bulkload

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// sourceHeaders are the column headers expected in the input CSV, in the
// order they map onto the transactions table.
var sourceHeaders = []string{
	"Transaction ID",
	"Date",
	"Customer ID",
	"Customer Name",
	"Phone Number",
	"Gender",
	"Age",
	"Customer Region",
	"Customer Type",
	"Product ID",
	"Product Name",
	"Brand",
	"Product Category",
	"Tags",
	"Quantity",
	"Price per Unit",
	"Discount Percentage",
	"Total Amount",
	"Final Amount",
	"Payment Method",
	"Order Status",
	"Delivery Type",
	"Store ID",
	"Store Location",
	"Salesperson ID",
	"Employee Name",
}

// TargetColumns are the transactions table columns loaded by the copier,
// matching sourceHeaders position by position.
var TargetColumns = []string{
	"transaction_id",
	"date",
	"customer_id",
	"customer_name",
	"phone_number",
	"gender",
	"age",
	"customer_region",
	"customer_type",
	"product_id",
	"product_name",
	"brand",
	"product_category",
	"tags",
	"quantity",
	"price_per_unit",
	"discount_percentage",
	"total_amount",
	"final_amount",
	"payment_method",
	"order_status",
	"delivery_type",
	"store_id",
	"store_location",
	"salesperson_id",
	"employee_name",
}

const tagsColumnIndex = 13

// SanitizeTags converts a comma-joined tags cell into a string array.
// Quotes are stripped, elements trimmed, and empty elements dropped.
func SanitizeTags(raw string) pq.StringArray {
	cleaned := pq.StringArray{}
	if strings.TrimSpace(raw) == "" {
		return cleaned
	}

	for _, part := range strings.Split(strings.ReplaceAll(raw, `"`, ""), ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			cleaned = append(cleaned, part)
		}
	}

	return cleaned
}

// headerIndex maps each expected source header to its position in the
// actual CSV header row. Missing columns are an error.
func headerIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.TrimSpace(name)] = i
	}

	index := make(map[string]int, len(sourceHeaders))
	for _, name := range sourceHeaders {
		pos, ok := positions[name]
		if !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
		index[name] = pos
	}

	return index, nil
}

// normalizeRecord maps one CSV record onto the target column order.
// Empty cells become NULL, except tags which become an empty array.
func normalizeRecord(index map[string]int, record []string) ([]interface{}, error) {
	values := make([]interface{}, len(sourceHeaders))

	for i, name := range sourceHeaders {
		pos := index[name]
		if pos >= len(record) {
			return nil, fmt.Errorf("record too short: %d fields, need column %q at %d", len(record), name, pos)
		}

		cell := strings.TrimSpace(record[pos])

		if i == tagsColumnIndex {
			values[i] = SanitizeTags(cell)
			continue
		}

		if cell == "" {
			values[i] = nil
			continue
		}
		values[i] = cell
	}

	return values, nil
}
