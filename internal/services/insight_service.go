package services

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"portfoliotracker/internal/cache"
	apperrors "portfoliotracker/internal/errors"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/models"
)

// snapshotOptions makes every aggregate query of one call read the same
// committed state.
var snapshotOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// insightService computes aggregate metrics over assets and transactions.
type insightService struct {
	db    *gorm.DB
	cache cache.Store
}

// NewInsightService creates a new InsightServicer backed by store.
func NewInsightService(db *gorm.DB, store cache.Store) InsightServicer {
	if store == nil {
		store = cache.NewNoopStore()
	}
	return &insightService{db: db, cache: store}
}

// GetTotalPortfolioValue returns sum(BUY total_cost) - sum(SELL total_cost).
// Dividends are excluded and an empty ledger is worth zero.
func (s *insightService) GetTotalPortfolioValue(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	gen, ok := s.cached(ctx, cache.KeyPortfolioValue, &value)
	if ok {
		return value, nil
	}

	err := s.snapshot(ctx, func(tx *gorm.DB) error {
		rows, err := loadLedger(tx, models.TransactionTypeBuy, models.TransactionTypeSell)
		if err != nil {
			return err
		}
		totals := summarize(rows)
		value = totals.bought.Sub(totals.sold)
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	s.store(ctx, cache.KeyPortfolioValue, gen, value)
	return value, nil
}

// GetInsights returns class counts and BUY/all-transaction aggregates.
func (s *insightService) GetInsights(ctx context.Context) (*Insights, error) {
	var cachedInsights Insights
	gen, ok := s.cached(ctx, cache.KeyInsights, &cachedInsights)
	if ok {
		if cachedInsights.AssetsByType == nil {
			cachedInsights.AssetsByType = map[string]int64{}
		}
		return &cachedInsights, nil
	}

	insights := &Insights{AssetsByType: map[string]int64{}}
	err := s.snapshot(ctx, func(tx *gorm.DB) error {
		type classCount struct {
			ClassName string
			Total     int64
		}
		var counts []classCount
		if err := tx.Table("assets").
			Select("asset_classes.name AS class_name, COUNT(assets.id) AS total").
			Joins("INNER JOIN asset_classes ON asset_classes.id = assets.asset_class_id").
			Group("asset_classes.name").
			Scan(&counts).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStoreFailure, err)
		}
		for _, c := range counts {
			insights.AssetsByType[c.ClassName] = c.Total
		}

		rows, err := loadLedger(tx)
		if err != nil {
			return err
		}
		totals := summarize(rows)
		insights.TotalInvestment = totals.bought
		insights.AvgCostPerShare = totals.avgBuyPrice()
		insights.MaxTransactionValue = totals.max
		insights.MinTransactionValue = totals.min
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.store(ctx, cache.KeyInsights, gen, insights)
	return insights, nil
}

// snapshot runs fc inside a read-only repeatable-read transaction.
func (s *insightService) snapshot(ctx context.Context, fc func(tx *gorm.DB) error) error {
	if err := s.db.WithContext(ctx).Transaction(fc, snapshotOptions); err != nil {
		return asStoreError(err)
	}
	return nil
}

// cached looks key up and returns the generation to fill it under.
// A negative generation means the cache is unusable for this call.
func (s *insightService) cached(ctx context.Context, key string, dest interface{}) (int64, bool) {
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		logger.Get().Warnw("insight cache read failed", "key", key, "error", err)
		return -1, false
	}
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		logger.Get().Warnw("insight cache read failed", "key", key, "error", err)
		return gen, false
	}
	return gen, found
}

func (s *insightService) store(ctx context.Context, key string, gen int64, value interface{}) {
	if gen < 0 {
		return
	}
	if err := s.cache.Set(ctx, key, gen, value); err != nil {
		logger.Get().Warnw("insight cache write failed", "key", key, "error", err)
	}
}

// ledgerRow holds the columns of a transaction the aggregates read.
type ledgerRow struct {
	TransactionType models.TransactionType
	PricePerShare   decimal.Decimal
	TotalCost       decimal.Decimal
}

// loadLedger reads the amounts of every transaction, or only those of the
// given types. Sums are taken in Go so they stay exact on every driver.
func loadLedger(tx *gorm.DB, types ...models.TransactionType) ([]ledgerRow, error) {
	rows := []ledgerRow{}
	q := tx.Model(&models.Transaction{}).Select("transaction_type, price_per_share, total_cost")
	if len(types) > 0 {
		q = q.Where("transaction_type IN ?", types)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}
	return rows, nil
}

// ledgerTotals are the aggregates over a set of ledger rows. Empty sets
// leave every figure at zero.
type ledgerTotals struct {
	bought, sold decimal.Decimal
	buyPriceSum  decimal.Decimal
	buys         int64
	max, min     decimal.Decimal
}

func summarize(rows []ledgerRow) ledgerTotals {
	var t ledgerTotals
	for i, r := range rows {
		switch r.TransactionType {
		case models.TransactionTypeBuy:
			t.bought = t.bought.Add(r.TotalCost)
			t.buyPriceSum = t.buyPriceSum.Add(r.PricePerShare)
			t.buys++
		case models.TransactionTypeSell:
			t.sold = t.sold.Add(r.TotalCost)
		}
		if i == 0 || r.TotalCost.GreaterThan(t.max) {
			t.max = r.TotalCost
		}
		if i == 0 || r.TotalCost.LessThan(t.min) {
			t.min = r.TotalCost
		}
	}
	return t
}

func (t ledgerTotals) avgBuyPrice() decimal.Decimal {
	if t.buys == 0 {
		return decimal.Zero
	}
	return t.buyPriceSum.Div(decimal.NewFromInt(t.buys))
}
