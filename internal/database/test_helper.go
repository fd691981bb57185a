package database

import (
	"testing"
	"time"

	"sales-ledger/internal/config"
	"sales-ledger/internal/models"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestTransaction inserts a transaction with sensible defaults,
// customized through the mutate callback.
func CreateTestTransaction(t *testing.T, db *DB, mutate func(*models.Transaction)) *models.Transaction {
	t.Helper()

	name := "Test Customer"
	region := "North"
	gender := "Female"
	age := 30
	category := "Electronics"
	payment := "Credit Card"
	quantity := 1
	price := decimal.NewFromInt(100)

	txn := &models.Transaction{
		Date:            time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CustomerName:    &name,
		CustomerRegion:  &region,
		Gender:          &gender,
		Age:             &age,
		ProductCategory: &category,
		PaymentMethod:   &payment,
		Quantity:        &quantity,
		PricePerUnit:    &price,
		Tags:            pq.StringArray{"Sale"},
	}

	if mutate != nil {
		mutate(txn)
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM transactions").Error; err != nil {
		t.Logf("failed to cleanup transactions table: %v", err)
	}
}
