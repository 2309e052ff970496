package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfoliotracker/internal/cache"
	apperrors "portfoliotracker/internal/errors"
	"portfoliotracker/internal/models"
)

// assetService handles asset-related data access.
type assetService struct {
	db    *gorm.DB
	cache cache.Store
}

// NewAssetService creates a new AssetServicer. Successful writes invalidate store.
func NewAssetService(db *gorm.DB, store cache.Store) AssetServicer {
	if store == nil {
		store = cache.NewNoopStore()
	}
	return &assetService{db: db, cache: store}
}

// AddAsset inserts an asset. A ticker that already exists is left untouched:
// the existing row is returned with created=false and no error.
func (s *assetService) AddAsset(ctx context.Context, ticker string, assetClassID uint, name string) (*models.Asset, bool, error) {
	asset, created, err := addAsset(s.db.WithContext(ctx), AssetInput{
		Ticker:       ticker,
		AssetClassID: assetClassID,
		Name:         name,
	})
	if err != nil {
		return nil, false, err
	}
	if created {
		invalidateAggregates(ctx, s.cache)
	}
	return asset, created, nil
}

// AddAssetWithTransaction adds (or reuses) an asset and records its first
// transaction in one database transaction.
func (s *assetService) AddAssetWithTransaction(ctx context.Context, assetIn AssetInput, txIn TransactionInput) (*models.Asset, *models.Transaction, error) {
	var (
		asset       *models.Asset
		transaction *models.Transaction
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, _, txErr := addAsset(tx, assetIn)
		if txErr != nil {
			return txErr
		}

		txIn.AssetID = a.ID
		t, txErr := addTransaction(tx, txIn)
		if txErr != nil {
			return txErr
		}

		asset, transaction = a, t
		return nil
	})
	if err != nil {
		return nil, nil, asStoreError(err)
	}

	invalidateAggregates(ctx, s.cache)
	return asset, transaction, nil
}

// ListAssets returns every asset with a valid class, ordered by ticker.
func (s *assetService) ListAssets(ctx context.Context) ([]AssetSummary, error) {
	assets := []AssetSummary{}
	if err := s.db.WithContext(ctx).Table("assets").
		Select("assets.id, assets.ticker, assets.name, asset_classes.name AS class_name").
		Joins("INNER JOIN asset_classes ON asset_classes.id = assets.asset_class_id").
		Order("assets.ticker ASC").
		Scan(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}
	return assets, nil
}

// ListAssetClasses returns all asset classes.
func (s *assetService) ListAssetClasses(ctx context.Context) ([]models.AssetClass, error) {
	classes := []models.AssetClass{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&classes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}
	return classes, nil
}

// GetAssetByTicker returns the asset with exactly this ticker.
func (s *assetService) GetAssetByTicker(ctx context.Context, ticker string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.WithContext(ctx).Where("ticker = ?", ticker).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}
	return &asset, nil
}

// UpdateAssetName renames an asset. An unknown id is a no-op.
func (s *assetService) UpdateAssetName(ctx context.Context, assetID uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}

	if err := s.db.WithContext(ctx).Model(&models.Asset{}).
		Where("id = ?", assetID).
		Update("name", name).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}

	invalidateAggregates(ctx, s.cache)
	return nil
}

// DeleteAsset deletes an asset's transactions and then the asset itself,
// committed together. An unknown id is a no-op.
func (s *assetService) DeleteAsset(ctx context.Context, assetID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Where("asset_id = ?", assetID).Delete(&models.Transaction{}).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrStoreFailure, txErr)
		}
		if txErr := tx.Delete(&models.Asset{}, assetID).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrStoreFailure, txErr)
		}
		return nil
	})
	if err != nil {
		return asStoreError(err)
	}

	invalidateAggregates(ctx, s.cache)
	return nil
}

// addAsset performs the insert-or-reuse on db, which may be a transaction.
// An existing ticker wins over every other argument: its row is returned
// unchanged without looking at the class or name.
func addAsset(db *gorm.DB, in AssetInput) (*models.Asset, bool, error) {
	ticker := strings.TrimSpace(in.Ticker)
	if ticker == "" {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "Ticker is required")
	}

	existing, err := findAsset(db, ticker)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}

	var class models.AssetClass
	if err := db.First(&class, in.AssetClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.ErrAssetClassNotFound
		}
		return nil, false, apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}

	asset := &models.Asset{
		Ticker:       ticker,
		AssetClassID: class.ID,
		Name:         name,
	}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticker"}},
		DoNothing: true,
	}).Create(asset)
	if result.Error != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrStoreFailure, result.Error)
	}
	if result.RowsAffected > 0 {
		return asset, true, nil
	}

	// Lost a race with a concurrent insert of the same ticker.
	existing, err = findAsset(db, ticker)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, apperrors.WithMessage(apperrors.ErrStoreFailure, "Asset insert was ignored")
	}
	return existing, false, nil
}

// findAsset returns the asset with this ticker, or nil when there is none.
func findAsset(db *gorm.DB, ticker string) (*models.Asset, error) {
	var asset models.Asset
	err := db.Where("ticker = ?", ticker).First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}
	return &asset, nil
}
