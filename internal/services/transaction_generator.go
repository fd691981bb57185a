package services

import (
	"fmt"
	"time"

	"sales-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type transactionGenerator struct {
	faker *gofakeit.Faker
}

// NewTransactionGenerator creates a sample data generator for development
// environments. The generated rows exercise every filterable dimension.
func NewTransactionGenerator() TransactionGeneratorInterface {
	return &transactionGenerator{
		faker: gofakeit.New(0),
	}
}

// NewSeededTransactionGenerator creates a generator with a fixed seed for
// reproducible test fixtures.
func NewSeededTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	return &transactionGenerator{
		faker: gofakeit.New(seed),
	}
}

type productInfo struct {
	name     string
	brand    string
	category string
}

var (
	regionPool = []string{"North", "South", "East", "West", "Central"}

	genderPool = []string{"Male", "Female", "Other"}

	customerTypePool = []string{"New", "Returning", "VIP"}

	paymentMethodPool = []string{"Cash", "Card", "UPI", "Net Banking", "Wallet"}

	orderStatusPool = []string{"Completed", "Pending", "Cancelled", "Returned"}

	deliveryTypePool = []string{"Home Delivery", "Store Pickup", "Express"}

	tagPool = []string{"Sale", "New", "Popular", "Premium", "Clearance", "Seasonal", "Limited"}

	productPool = []productInfo{
		{"Smartphone X200", "Nexa", "Electronics"},
		{"Wireless Earbuds Pro", "Nexa", "Electronics"},
		{"4K Smart TV 55", "Visia", "Electronics"},
		{"Laptop AeroBook 14", "Visia", "Electronics"},
		{"Running Shoes Swift", "Stryde", "Footwear"},
		{"Leather Sneakers", "Stryde", "Footwear"},
		{"Cotton T-Shirt", "Loom&Co", "Clothing"},
		{"Denim Jacket", "Loom&Co", "Clothing"},
		{"Espresso Machine", "BrewMate", "Home Appliances"},
		{"Air Fryer XL", "BrewMate", "Home Appliances"},
		{"Yoga Mat Pro", "FlexFit", "Sports"},
		{"Dumbbell Set 20kg", "FlexFit", "Sports"},
		{"Face Serum Glow", "Derma+", "Beauty"},
		{"Sunscreen SPF50", "Derma+", "Beauty"},
		{"Office Chair Ergo", "Furnio", "Furniture"},
		{"Bookshelf Oak", "Furnio", "Furniture"},
	}
)

// Generate produces count sample transactions spread over the last two years.
func (g *transactionGenerator) Generate(count int) []models.Transaction {
	transactions := make([]models.Transaction, 0, count)
	now := time.Now()

	for i := 0; i < count; i++ {
		product := productPool[g.faker.IntRange(0, len(productPool)-1)]

		quantity := g.faker.IntRange(1, 8)
		price := decimal.NewFromFloat(g.faker.Price(5, 2000)).Round(2)
		discount := decimal.NewFromInt(int64(g.faker.IntRange(0, 40)))
		total := price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
		final := total.Mul(decimal.NewFromInt(100).Sub(discount)).Div(decimal.NewFromInt(100)).Round(2)

		age := g.faker.IntRange(18, 75)
		date := now.AddDate(0, 0, -g.faker.IntRange(0, 730)).
			Add(-time.Duration(g.faker.IntRange(0, 23)) * time.Hour)

		transactions = append(transactions, models.Transaction{
			TransactionID:      ptr(fmt.Sprintf("TXN-%08d", g.faker.IntRange(10000000, 99999999))),
			Date:               date,
			CustomerID:         ptr(fmt.Sprintf("CUST-%06d", g.faker.IntRange(100000, 999999))),
			CustomerName:       ptr(g.faker.Name()),
			PhoneNumber:        ptr(g.faker.Phone()),
			Gender:             ptr(g.pick(genderPool)),
			Age:                &age,
			CustomerRegion:     ptr(g.pick(regionPool)),
			CustomerType:       ptr(g.pick(customerTypePool)),
			ProductID:          ptr(fmt.Sprintf("PROD-%05d", g.faker.IntRange(10000, 99999))),
			ProductName:        ptr(product.name),
			Brand:              ptr(product.brand),
			ProductCategory:    ptr(product.category),
			Tags:               pq.StringArray(g.pickTags()),
			Quantity:           &quantity,
			PricePerUnit:       &price,
			DiscountPercentage: &discount,
			TotalAmount:        &total,
			FinalAmount:        &final,
			PaymentMethod:      ptr(g.pick(paymentMethodPool)),
			OrderStatus:        ptr(g.pick(orderStatusPool)),
			DeliveryType:       ptr(g.pick(deliveryTypePool)),
			StoreID:            ptr(fmt.Sprintf("STORE-%03d", g.faker.IntRange(1, 250))),
			StoreLocation:      ptr(g.faker.City()),
			SalespersonID:      ptr(fmt.Sprintf("EMP-%04d", g.faker.IntRange(1000, 9999))),
			EmployeeName:       ptr(g.faker.Name()),
		})
	}

	return transactions
}

func (g *transactionGenerator) pick(pool []string) string {
	return pool[g.faker.IntRange(0, len(pool)-1)]
}

// pickTags returns 0-3 distinct tags; roughly a fifth of rows get none.
func (g *transactionGenerator) pickTags() []string {
	if g.faker.IntRange(1, 5) == 1 {
		return nil
	}

	count := g.faker.IntRange(1, 3)
	seen := make(map[string]bool, count)
	tags := make([]string, 0, count)
	for len(tags) < count {
		tag := g.pick(tagPool)
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

func ptr(s string) *string {
	return &s
}
