package database

import (
	"errors"
	"testing"

	"sales-ledger/internal/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSetupTestDB_MigratesTransactions(t *testing.T) {
	db := SetupTestDB(t)

	assert.True(t, db.Migrator().HasTable(&models.Transaction{}))
}

func TestCreateTestTransaction_Defaults(t *testing.T) {
	db := SetupTestDB(t)

	txn := CreateTestTransaction(t, db, nil)

	assert.NotZero(t, txn.ID)
	assert.Equal(t, "Test Customer", *txn.CustomerName)

	var stored models.Transaction
	require.NoError(t, db.First(&stored, txn.ID).Error)
	assert.Equal(t, pq.StringArray{"Sale"}, stored.Tags)
}

func TestCreateTestTransaction_Mutated(t *testing.T) {
	db := SetupTestDB(t)

	txn := CreateTestTransaction(t, db, func(txn *models.Transaction) {
		name := "Override"
		txn.CustomerName = &name
		txn.Tags = pq.StringArray{"Premium", "Limited"}
	})

	var stored models.Transaction
	require.NoError(t, db.First(&stored, txn.ID).Error)
	assert.Equal(t, "Override", *stored.CustomerName)
	assert.Equal(t, pq.StringArray{"Premium", "Limited"}, stored.Tags)
}

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)

	assert.NoError(t, db.HealthCheck())
}

func TestTransaction_RollsBackOnError(t *testing.T) {
	db := SetupTestDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		name := "Rolled Back"
		if createErr := tx.Create(&models.Transaction{CustomerName: &name}).Error; createErr != nil {
			return createErr
		}
		return errors.New("force rollback")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCleanupTestDB(t *testing.T) {
	db := SetupTestDB(t)
	CreateTestTransaction(t, db, nil)
	CreateTestTransaction(t, db, nil)

	CleanupTestDB(t, db)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
}
