package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"portfoliotracker/internal/models"
)

// AssetSummary is an asset joined with the name of its class.
type AssetSummary struct {
	ID        uint   `json:"id"`
	Ticker    string `json:"ticker"`
	Name      string `json:"name"`
	ClassName string `json:"class_name"`
}

// TransactionEntry is a transaction joined with its asset's ticker.
type TransactionEntry struct {
	ID              uint                   `json:"id"`
	Ticker          string                 `json:"ticker"`
	TransactionDate time.Time              `json:"transaction_date"`
	TransactionType models.TransactionType `json:"transaction_type"`
	Quantity        decimal.Decimal        `json:"quantity"`
	PricePerShare   decimal.Decimal        `json:"price_per_share"`
	TotalCost       decimal.Decimal        `json:"total_cost"`
}

// AssetInput describes an asset to add.
type AssetInput struct {
	Ticker       string
	AssetClassID uint
	Name         string
}

// TransactionInput describes a transaction to record. AssetID is ignored by
// AddAssetWithTransaction, which uses the asset it resolves.
type TransactionInput struct {
	AssetID       uint
	Date          time.Time
	Type          models.TransactionType
	Quantity      decimal.Decimal
	PricePerShare decimal.Decimal
}

// AssetServicer defines the contract for asset-related data access.
type AssetServicer interface {
	AddAsset(ctx context.Context, ticker string, assetClassID uint, name string) (*models.Asset, bool, error)
	AddAssetWithTransaction(ctx context.Context, asset AssetInput, tx TransactionInput) (*models.Asset, *models.Transaction, error)
	ListAssets(ctx context.Context) ([]AssetSummary, error)
	ListAssetClasses(ctx context.Context) ([]models.AssetClass, error)
	GetAssetByTicker(ctx context.Context, ticker string) (*models.Asset, error)
	UpdateAssetName(ctx context.Context, assetID uint, name string) error
	DeleteAsset(ctx context.Context, assetID uint) error
}

// TransactionServicer defines the contract for transaction-related data access.
type TransactionServicer interface {
	AddTransaction(ctx context.Context, input TransactionInput) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]TransactionEntry, error)
	DeleteTransaction(ctx context.Context, transactionID uint) error
}

// Insights contains the aggregate metrics derived from recorded data.
// Absent aggregates are zero.
type Insights struct {
	AssetsByType        map[string]int64 `json:"assets_by_type"`
	TotalInvestment     decimal.Decimal  `json:"total_investment"`
	AvgCostPerShare     decimal.Decimal  `json:"avg_cost_per_share"`
	MaxTransactionValue decimal.Decimal  `json:"max_transaction_value"`
	MinTransactionValue decimal.Decimal  `json:"min_transaction_value"`
}

// InsightServicer defines the contract for aggregate reporting.
type InsightServicer interface {
	GetTotalPortfolioValue(ctx context.Context) (decimal.Decimal, error)
	GetInsights(ctx context.Context) (*Insights, error)
}
