package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"portfoliotracker/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Dec parses a decimal literal, failing the test on malformed input.
func Dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

// GetAssetClass returns the seeded asset class with the given name.
func GetAssetClass(t *testing.T, db *gorm.DB, name string) *models.AssetClass {
	t.Helper()

	var class models.AssetClass
	if err := db.Where("name = ?", name).First(&class).Error; err != nil {
		t.Fatalf("failed to load asset class %q: %v", name, err)
	}
	return &class
}

// CreateTestAsset creates an asset with a unique ticker in the Equity class.
func CreateTestAsset(t *testing.T, db *gorm.DB) *models.Asset {
	t.Helper()
	n := nextID()
	return CreateTestAssetWithParams(t, db, fmt.Sprintf("TST%d", n), fmt.Sprintf("Test Asset %d", n), "Equity")
}

// CreateTestAssetWithParams creates an asset in the named class.
func CreateTestAssetWithParams(t *testing.T, db *gorm.DB, ticker, name, className string) *models.Asset {
	t.Helper()

	class := GetAssetClass(t, db, className)
	asset := &models.Asset{
		Ticker:       ticker,
		AssetClassID: class.ID,
		Name:         name,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestTransaction records a transaction for assetID on the given date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, assetID uint, txType models.TransactionType, date time.Time, quantity, price string) *models.Transaction {
	t.Helper()

	tx := models.NewTransaction(assetID, date, txType, Dec(t, quantity), Dec(t, price))
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
