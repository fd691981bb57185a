package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Transaction represents a single retail sales transaction row. Every field
// except ID and Date may be absent in the source data, so all of them are
// pointers or array types that serialize to null when unset.
type Transaction struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionID *string   `gorm:"type:varchar(50);index" json:"transaction_id"`
	Date          time.Time `gorm:"type:timestamp without time zone;not null;index" json:"date"`

	CustomerID     *string `gorm:"type:varchar(50)" json:"customer_id"`
	CustomerName   *string `gorm:"type:varchar(255);index" json:"customer_name"`
	PhoneNumber    *string `gorm:"type:varchar(50)" json:"phone_number"`
	Gender         *string `gorm:"type:varchar(20);index" json:"gender"`
	Age            *int    `gorm:"index" json:"age"`
	CustomerRegion *string `gorm:"type:varchar(100);index" json:"customer_region"`
	CustomerType   *string `gorm:"type:varchar(50)" json:"customer_type"`

	ProductID       *string `gorm:"type:varchar(50)" json:"product_id"`
	ProductName     *string `gorm:"type:varchar(255)" json:"product_name"`
	Brand           *string `gorm:"type:varchar(100)" json:"brand"`
	ProductCategory *string `gorm:"type:varchar(100);index" json:"product_category"`

	Tags pq.StringArray `gorm:"type:text[]" json:"tags"`

	Quantity           *int             `gorm:"index" json:"quantity"`
	PricePerUnit       *decimal.Decimal `gorm:"type:decimal(12,2)" json:"price_per_unit"`
	DiscountPercentage *decimal.Decimal `gorm:"type:decimal(5,2)" json:"discount_percentage"`
	TotalAmount        *decimal.Decimal `gorm:"type:decimal(14,2)" json:"total_amount"`
	FinalAmount        *decimal.Decimal `gorm:"type:decimal(14,2)" json:"final_amount"`

	PaymentMethod *string `gorm:"type:varchar(50);index" json:"payment_method"`
	OrderStatus   *string `gorm:"type:varchar(50)" json:"order_status"`
	DeliveryType  *string `gorm:"type:varchar(50)" json:"delivery_type"`
	StoreID       *string `gorm:"type:varchar(50)" json:"store_id"`
	StoreLocation *string `gorm:"type:varchar(255)" json:"store_location"`
	SalespersonID *string `gorm:"type:varchar(50)" json:"salesperson_id"`
	EmployeeName  *string `gorm:"type:varchar(255)" json:"employee_name"`
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// HasTag reports whether the transaction carries the given tag.
func (t *Transaction) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}
