package dto

import (
	"strconv"
	"time"

	"sales-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionResponse is the read-only projection of a transaction returned to
// callers. The identifier is rendered as a string: the column is a bigint and
// JSON consumers without 64-bit integers would silently lose precision.
type TransactionResponse struct {
	ID            string    `json:"id"`
	TransactionID *string   `json:"transactionId"`
	Date          time.Time `json:"date"`

	CustomerID     *string `json:"customerId"`
	CustomerName   *string `json:"customerName"`
	PhoneNumber    *string `json:"phoneNumber"`
	Gender         *string `json:"gender"`
	Age            *int    `json:"age"`
	CustomerRegion *string `json:"customerRegion"`
	CustomerType   *string `json:"customerType"`

	ProductID       *string `json:"productId"`
	ProductName     *string `json:"productName"`
	Brand           *string `json:"brand"`
	ProductCategory *string `json:"productCategory"`

	Tags []string `json:"tags"`

	Quantity           *int             `json:"quantity"`
	PricePerUnit       *decimal.Decimal `json:"pricePerUnit"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage"`
	TotalAmount        *decimal.Decimal `json:"totalAmount"`
	FinalAmount        *decimal.Decimal `json:"finalAmount"`

	PaymentMethod *string `json:"paymentMethod"`
	OrderStatus   *string `json:"orderStatus"`
	DeliveryType  *string `json:"deliveryType"`
	StoreID       *string `json:"storeId"`
	StoreLocation *string `json:"storeLocation"`
	SalespersonID *string `json:"salespersonId"`
	EmployeeName  *string `json:"employeeName"`
}

// PaginationMeta contains pagination metadata for list responses
type PaginationMeta struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

// ListTransactionsResponse is the success envelope for the listing endpoint
type ListTransactionsResponse struct {
	Success bool                  `json:"success"`
	Data    []TransactionResponse `json:"data"`
	Meta    PaginationMeta        `json:"meta"`
}

// FromTransaction converts a stored transaction into its response projection.
func FromTransaction(t models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                 strconv.FormatInt(t.ID, 10),
		TransactionID:      t.TransactionID,
		Date:               t.Date,
		CustomerID:         t.CustomerID,
		CustomerName:       t.CustomerName,
		PhoneNumber:        t.PhoneNumber,
		Gender:             t.Gender,
		Age:                t.Age,
		CustomerRegion:     t.CustomerRegion,
		CustomerType:       t.CustomerType,
		ProductID:          t.ProductID,
		ProductName:        t.ProductName,
		Brand:              t.Brand,
		ProductCategory:    t.ProductCategory,
		Tags:               t.Tags,
		Quantity:           t.Quantity,
		PricePerUnit:       t.PricePerUnit,
		DiscountPercentage: t.DiscountPercentage,
		TotalAmount:        t.TotalAmount,
		FinalAmount:        t.FinalAmount,
		PaymentMethod:      t.PaymentMethod,
		OrderStatus:        t.OrderStatus,
		DeliveryType:       t.DeliveryType,
		StoreID:            t.StoreID,
		StoreLocation:      t.StoreLocation,
		SalespersonID:      t.SalespersonID,
		EmployeeName:       t.EmployeeName,
	}
}

// FromTransactions converts a page of stored transactions. It always returns a
// non-nil slice so an empty page serializes as [] rather than null.
func FromTransactions(transactions []models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, FromTransaction(t))
	}
	return responses
}
