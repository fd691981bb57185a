package validation

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "sales-ledger/internal/errors"
	"sales-ledger/internal/models"

	"github.com/go-playground/validator/v10"
)

// Date layouts accepted for dateFrom/dateTo. Plain calendar dates are the
// documented format; RFC3339 is accepted for callers that send full timestamps.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

const (
	msgNotAnInteger      = "must be an integer"
	msgInvalidDate       = "invalid date format"
	msgAgeRangeInverted  = "ageMin cannot be greater than ageMax"
	msgDateRangeInverted = "dateFrom cannot be greater than dateTo"
)

// transactionQueryCandidate carries the coerced scalar parameters through
// go-playground range and enumeration checks. Field names reported to clients
// come from the json tags.
type transactionQueryCandidate struct {
	AgeMin    *int    `json:"ageMin" validate:"omitempty,gte=0"`
	AgeMax    *int    `json:"ageMax" validate:"omitempty,gte=0"`
	SortBy    *string `json:"sortBy" validate:"omitempty,oneof=date quantity customerName"`
	SortOrder *string `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page      *int    `json:"page" validate:"omitempty,gte=1"`
	PageSize  *int    `json:"pageSize" validate:"omitempty,gte=1,lte=100"`
}

// TransactionQueryValidator parses and validates raw transaction listing query
// parameters into a fully typed filter spec. All violations found across the
// input are aggregated before failing; it never stops at the first violation.
type TransactionQueryValidator struct {
	validator *Validator
}

// NewTransactionQueryValidator creates a transaction query validator.
func NewTransactionQueryValidator() *TransactionQueryValidator {
	return &TransactionQueryValidator{validator: NewValidator()}
}

// Validate turns raw query parameters into a TransactionFilters value. On any
// violation it returns a validation error carrying the full per-field detail
// map, and the returned filters must not be used.
func (v *TransactionQueryValidator) Validate(params url.Values) (models.TransactionFilters, error) {
	filters := models.DefaultTransactionFilters()
	fieldErrors := apperrors.FieldErrors{}

	filters.Search = strings.TrimSpace(params.Get("search"))

	filters.CustomerRegions = splitCSV(params.Get("customerRegions"))
	filters.Genders = splitCSV(params.Get("genders"))
	filters.ProductCategories = splitCSV(params.Get("productCategories"))
	filters.Tags = splitCSV(params.Get("tags"))
	filters.PaymentMethods = splitCSV(params.Get("paymentMethods"))

	candidate := transactionQueryCandidate{
		AgeMin:    parseOptionalInt(params, "ageMin", fieldErrors),
		AgeMax:    parseOptionalInt(params, "ageMax", fieldErrors),
		SortBy:    optionalString(params, "sortBy"),
		SortOrder: optionalString(params, "sortOrder"),
		Page:      parseOptionalInt(params, "page", fieldErrors),
		PageSize:  parseOptionalInt(params, "pageSize", fieldErrors),
	}

	if err := v.validator.GetValidate().Struct(candidate); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range validationErrs {
				fieldErrors.Add(fe.Field(), FormatFieldError(fe))
			}
		} else {
			return filters, apperrors.NewUnexpected(err)
		}
	}

	filters.DateFrom = parseOptionalDate(params, "dateFrom", fieldErrors)
	filters.DateTo = parseOptionalDate(params, "dateTo", fieldErrors)

	// Cross-field constraints. Range comparisons are meaningless when either
	// side failed to parse, so a parse failure suppresses the inversion check
	// for that pair.
	if candidate.AgeMin != nil && candidate.AgeMax != nil && *candidate.AgeMin > *candidate.AgeMax {
		fieldErrors.Add("ageMin", msgAgeRangeInverted)
	}
	if filters.DateFrom != nil && filters.DateTo != nil && filters.DateFrom.After(*filters.DateTo) {
		fieldErrors.Add("dateFrom", msgDateRangeInverted)
	}

	if len(fieldErrors) > 0 {
		return filters, apperrors.NewValidation(fieldErrors)
	}

	if candidate.AgeMin != nil {
		filters.AgeMin = candidate.AgeMin
	}
	if candidate.AgeMax != nil {
		filters.AgeMax = candidate.AgeMax
	}
	if candidate.SortBy != nil {
		filters.SortBy = *candidate.SortBy
	}
	if candidate.SortOrder != nil {
		filters.SortOrder = *candidate.SortOrder
	}
	if candidate.Page != nil {
		filters.Page = *candidate.Page
	}
	if candidate.PageSize != nil {
		filters.PageSize = *candidate.PageSize
	}

	return filters, nil
}

// splitCSV splits a comma-separated parameter into a set of trimmed, non-empty
// values. An empty result means "no restriction on this dimension", never
// "match nothing".
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			values = append(values, trimmed)
		}
	}

	if len(values) == 0 {
		return nil
	}
	return values
}

// optionalString returns a pointer to the raw parameter value, or nil when the
// parameter is absent or blank so defaults apply only for missing fields.
func optionalString(params url.Values, name string) *string {
	raw := strings.TrimSpace(params.Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// parseOptionalInt coerces a string parameter to an integer, recording a
// violation when the value is present but not an integer.
func parseOptionalInt(params url.Values, name string, fieldErrors apperrors.FieldErrors) *int {
	raw := strings.TrimSpace(params.Get(name))
	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		fieldErrors.Add(name, msgNotAnInteger)
		return nil
	}
	return &value
}

// parseOptionalDate coerces a date parameter, recording a violation when the
// value is present but unparsable under every accepted layout.
func parseOptionalDate(params url.Values, name string, fieldErrors apperrors.FieldErrors) *time.Time {
	raw := strings.TrimSpace(params.Get(name))
	if raw == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed
		}
	}

	fieldErrors.Add(name, msgInvalidDate)
	return nil
}
