package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"portfoliotracker/internal/cache"
	apperrors "portfoliotracker/internal/errors"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/models"
)

// transactionService handles transaction-related data access.
type transactionService struct {
	db    *gorm.DB
	cache cache.Store
}

// NewTransactionService creates a new TransactionServicer. Successful writes invalidate store.
func NewTransactionService(db *gorm.DB, store cache.Store) TransactionServicer {
	if store == nil {
		store = cache.NewNoopStore()
	}
	return &transactionService{db: db, cache: store}
}

// AddTransaction records a transaction with total_cost = quantity × price.
func (s *transactionService) AddTransaction(ctx context.Context, input TransactionInput) (*models.Transaction, error) {
	transaction, err := addTransaction(s.db.WithContext(ctx), input)
	if err != nil {
		return nil, err
	}

	invalidateAggregates(ctx, s.cache)
	return transaction, nil
}

// ListTransactions returns every transaction with its ticker, most recent
// date first. Transactions sharing a date are ordered by id, newest first.
func (s *transactionService) ListTransactions(ctx context.Context) ([]TransactionEntry, error) {
	entries := []TransactionEntry{}
	if err := s.db.WithContext(ctx).Table("transactions").
		Select("transactions.id, assets.ticker, transactions.transaction_date, transactions.transaction_type, " +
			"transactions.quantity, transactions.price_per_share, transactions.total_cost").
		Joins("INNER JOIN assets ON assets.id = transactions.asset_id").
		Order("transactions.transaction_date DESC, transactions.id DESC").
		Scan(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}
	return entries, nil
}

// DeleteTransaction deletes a transaction by id. An unknown id is a no-op.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Transaction{}, transactionID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}

	invalidateAggregates(ctx, s.cache)
	return nil
}

// addTransaction performs the insert on db, which may be a transaction.
func addTransaction(db *gorm.DB, in TransactionInput) (*models.Transaction, error) {
	if !in.Type.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if !in.Quantity.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity must be positive")
	}
	if !in.PricePerShare.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Price per share must be positive")
	}

	var asset models.Asset
	if err := db.Select("id").First(&asset, in.AssetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}

	transaction := models.NewTransaction(asset.ID, calendarDate(in.Date), in.Type, in.Quantity, in.PricePerShare)
	if err := db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}
	return transaction, nil
}

// calendarDate drops the clock part of t, keeping its calendar day in UTC.
// A zero time means today.
func calendarDate(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// invalidateAggregates clears cached insights after a write. Cache trouble
// is logged and otherwise ignored.
func invalidateAggregates(ctx context.Context, store cache.Store) {
	if err := store.Invalidate(ctx); err != nil {
		logger.Get().Warnw("failed to invalidate insight cache", "error", err)
	}
}

// asStoreError keeps AppErrors as they are and wraps anything else as a
// store failure.
func asStoreError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrStoreFailure, err)
}
