package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeBuy      TransactionType = "BUY"
	TransactionTypeSell     TransactionType = "SELL"
	TransactionTypeDividend TransactionType = "DIVIDEND"
)

// TransactionTypes lists every supported transaction type.
var TransactionTypes = []TransactionType{
	TransactionTypeBuy,
	TransactionTypeSell,
	TransactionTypeDividend,
}

// ParseTransactionType normalizes s (case-insensitive) into a known type.
func ParseTransactionType(s string) (TransactionType, bool) {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.Valid()
}

// Valid reports whether t is one of the supported types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeBuy, TransactionTypeSell, TransactionTypeDividend:
		return true
	}
	return false
}

// Transaction is a buy, sell or dividend event recorded against an asset.
// TotalCost is fixed at insert time; transactions are never edited.
//
// Amounts are declared as text so SQLite keeps the exact decimal string
// instead of converting it to REAL. The PostgreSQL schema in migrations/
// declares them NUMERIC.
type Transaction struct {
	Base
	AssetID         uint            `gorm:"not null;index" json:"asset_id"`
	TransactionDate time.Time       `gorm:"type:date;not null;index" json:"transaction_date"`
	TransactionType TransactionType `gorm:"type:varchar(16);not null;index" json:"transaction_type"`
	Quantity        decimal.Decimal `gorm:"type:text;not null" json:"quantity"`
	PricePerShare   decimal.Decimal `gorm:"type:text;not null" json:"price_per_share"`
	TotalCost       decimal.Decimal `gorm:"type:text;not null" json:"total_cost"`

	// Relationships
	Asset *Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
}

// NewTransaction builds a transaction with TotalCost = quantity × price.
func NewTransaction(assetID uint, date time.Time, txType TransactionType, quantity, pricePerShare decimal.Decimal) *Transaction {
	return &Transaction{
		AssetID:         assetID,
		TransactionDate: date,
		TransactionType: txType,
		Quantity:        quantity,
		PricePerShare:   pricePerShare,
		TotalCost:       quantity.Mul(pricePerShare),
	}
}
