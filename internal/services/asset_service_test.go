package services

import (
	"context"
	"testing"

	"portfoliotracker/internal/models"
	"portfoliotracker/internal/testutil"
)

func TestAddAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)
		class := testutil.GetAssetClass(t, db, "Equity")

		asset, created, err := svc.AddAsset(ctx, "AAPL", class.ID, "Apple Inc")
		testutil.AssertNoError(t, err)

		if !created {
			t.Error("expected created=true for a new ticker")
		}
		if asset.ID == 0 {
			t.Fatal("expected non-zero asset ID")
		}
		if asset.Ticker != "AAPL" || asset.Name != "Apple Inc" || asset.AssetClassID != class.ID {
			t.Errorf("unexpected asset %+v", asset)
		}
	})

	t.Run("duplicate_ticker_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)
		equity := testutil.GetAssetClass(t, db, "Equity")
		bond := testutil.GetAssetClass(t, db, "Bond")

		first, _, err := svc.AddAsset(ctx, "AAPL", equity.ID, "Apple Inc")
		testutil.AssertNoError(t, err)

		second, created, err := svc.AddAsset(ctx, "AAPL", bond.ID, "Something Else")
		testutil.AssertNoError(t, err)

		if created {
			t.Error("expected created=false for an existing ticker")
		}
		if second.ID != first.ID {
			t.Errorf("expected existing asset %d, got %d", first.ID, second.ID)
		}

		var stored models.Asset
		if err := db.First(&stored, first.ID).Error; err != nil {
			t.Fatalf("failed to reload asset: %v", err)
		}
		if stored.Name != "Apple Inc" || stored.AssetClassID != equity.ID {
			t.Errorf("existing row should be unchanged, got %+v", stored)
		}

		var count int64
		db.Model(&models.Asset{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 asset, got %d", count)
		}
	})

	t.Run("duplicate_ticker_ignores_other_args", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)
		equity := testutil.GetAssetClass(t, db, "Equity")

		first, _, err := svc.AddAsset(ctx, "AAPL", equity.ID, "Apple Inc")
		testutil.AssertNoError(t, err)

		again, created, err := svc.AddAsset(ctx, "AAPL", 9999, "Apple Inc")
		testutil.AssertNoError(t, err)
		if created || again.ID != first.ID {
			t.Errorf("unknown class on an existing ticker: created=%v id=%d", created, again.ID)
		}

		again, created, err = svc.AddAsset(ctx, "AAPL", equity.ID, "  ")
		testutil.AssertNoError(t, err)
		if created || again.Name != "Apple Inc" {
			t.Errorf("blank name on an existing ticker: created=%v asset=%+v", created, again)
		}
	})

	t.Run("unknown_class", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)

		_, _, err := svc.AddAsset(ctx, "AAPL", 9999, "Apple Inc")
		testutil.AssertAppError(t, err, "ASSET_CLASS_NOT_FOUND")
	})

	t.Run("empty_ticker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)
		class := testutil.GetAssetClass(t, db, "Equity")

		_, _, err := svc.AddAsset(ctx, "  ", class.ID, "Apple Inc")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)
		class := testutil.GetAssetClass(t, db, "Equity")

		_, _, err := svc.AddAsset(ctx, "AAPL", class.ID, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListAssets(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered_by_ticker_with_class_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)

		testutil.CreateTestAssetWithParams(t, db, "MSFT", "Microsoft", "Equity")
		testutil.CreateTestAssetWithParams(t, db, "BND", "Total Bond", "Bond")
		testutil.CreateTestAssetWithParams(t, db, "AAPL", "Apple Inc", "Equity")

		assets, err := svc.ListAssets(ctx)
		testutil.AssertNoError(t, err)

		if len(assets) != 3 {
			t.Fatalf("expected 3 assets, got %d", len(assets))
		}
		want := []string{"AAPL", "BND", "MSFT"}
		for i, ticker := range want {
			if assets[i].Ticker != ticker {
				t.Errorf("position %d: expected %s, got %s", i, ticker, assets[i].Ticker)
			}
		}
		if assets[1].ClassName != "Bond" || assets[1].Name != "Total Bond" {
			t.Errorf("unexpected summary %+v", assets[1])
		}
	})

	t.Run("excludes_asset_with_missing_class", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)

		testutil.CreateTestAssetWithParams(t, db, "AAPL", "Apple Inc", "Equity")
		if err := db.Exec("INSERT INTO assets (ticker, asset_class_id, name) VALUES (?, ?, ?)", "ORPH", 9999, "Orphan").Error; err != nil {
			t.Fatalf("failed to insert orphan asset: %v", err)
		}

		assets, err := svc.ListAssets(ctx)
		testutil.AssertNoError(t, err)

		if len(assets) != 1 || assets[0].Ticker != "AAPL" {
			t.Errorf("expected only AAPL, got %+v", assets)
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)

		assets, err := svc.ListAssets(ctx)
		testutil.AssertNoError(t, err)

		if assets == nil || len(assets) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", assets)
		}
	})
}

func TestListAssetClasses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAssetService(db, nil)

	classes, err := svc.ListAssetClasses(context.Background())
	testutil.AssertNoError(t, err)

	if len(classes) != len(models.DefaultAssetClasses) {
		t.Fatalf("expected %d classes, got %d", len(models.DefaultAssetClasses), len(classes))
	}
	if classes[0].Name != "Equity" {
		t.Errorf("expected first class Equity, got %s", classes[0].Name)
	}
}

func TestGetAssetByTicker(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)
		created := testutil.CreateTestAssetWithParams(t, db, "AAPL", "Apple Inc", "Equity")

		asset, err := svc.GetAssetByTicker(ctx, "AAPL")
		testutil.AssertNoError(t, err)

		if asset.ID != created.ID || asset.Name != "Apple Inc" {
			t.Errorf("unexpected asset %+v", asset)
		}
	})

	t.Run("exact_match_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)
		testutil.CreateTestAssetWithParams(t, db, "AAPL", "Apple Inc", "Equity")

		_, err := svc.GetAssetByTicker(ctx, "AAP")
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})
}

func TestUpdateAssetName(t *testing.T) {
	ctx := context.Background()

	t.Run("renames", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)
		asset := testutil.CreateTestAssetWithParams(t, db, "AAPL", "Apple", "Equity")

		testutil.AssertNoError(t, svc.UpdateAssetName(ctx, asset.ID, "Apple Inc."))

		var stored models.Asset
		if err := db.First(&stored, asset.ID).Error; err != nil {
			t.Fatalf("failed to reload asset: %v", err)
		}
		if stored.Name != "Apple Inc." {
			t.Errorf("expected renamed asset, got %s", stored.Name)
		}
	})

	t.Run("unknown_id_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)

		testutil.AssertNoError(t, svc.UpdateAssetName(ctx, 4242, "Ghost"))
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)
		asset := testutil.CreateTestAsset(t, db)

		testutil.AssertAppError(t, svc.UpdateAssetName(ctx, asset.ID, " "), "INVALID_INPUT")
	})
}

func TestDeleteAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades_to_transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)
		txSvc := NewTransactionService(db, nil)

		doomed := testutil.CreateTestAssetWithParams(t, db, "AAPL", "Apple Inc", "Equity")
		kept := testutil.CreateTestAssetWithParams(t, db, "MSFT", "Microsoft", "Equity")
		testutil.CreateTestTransaction(t, db, doomed.ID, models.TransactionTypeBuy, testutil.Date(2024, 1, 1), "10", "150")
		testutil.CreateTestTransaction(t, db, doomed.ID, models.TransactionTypeSell, testutil.Date(2024, 2, 1), "4", "160")
		testutil.CreateTestTransaction(t, db, kept.ID, models.TransactionTypeBuy, testutil.Date(2024, 1, 15), "1", "300")

		testutil.AssertNoError(t, svc.DeleteAsset(ctx, doomed.ID))

		entries, err := txSvc.ListTransactions(ctx)
		testutil.AssertNoError(t, err)
		if len(entries) != 1 || entries[0].Ticker != "MSFT" {
			t.Errorf("expected only the MSFT transaction to remain, got %+v", entries)
		}

		var orphans int64
		db.Model(&models.Transaction{}).Where("asset_id = ?", doomed.ID).Count(&orphans)
		if orphans != 0 {
			t.Errorf("expected no transactions for deleted asset, got %d", orphans)
		}

		_, err = svc.GetAssetByTicker(ctx, "AAPL")
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})

	t.Run("unknown_id_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)

		testutil.AssertNoError(t, svc.DeleteAsset(ctx, 4242))
	})
}

func TestAddAssetWithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("creates_both", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)
		class := testutil.GetAssetClass(t, db, "Equity")

		asset, tx, err := svc.AddAssetWithTransaction(ctx,
			AssetInput{Ticker: "NVDA", AssetClassID: class.ID, Name: "NVIDIA"},
			TransactionInput{
				Date:          testutil.Date(2024, 5, 1),
				Type:          models.TransactionTypeBuy,
				Quantity:      testutil.Dec(t, "3"),
				PricePerShare: testutil.Dec(t, "900.5"),
			})
		testutil.AssertNoError(t, err)

		if tx.AssetID != asset.ID {
			t.Errorf("expected transaction for asset %d, got %d", asset.ID, tx.AssetID)
		}
		testutil.AssertDecimal(t, tx.TotalCost, "2701.5", "total cost")
	})

	t.Run("rolls_back_asset_on_failed_transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)
		class := testutil.GetAssetClass(t, db, "Equity")

		_, _, err := svc.AddAssetWithTransaction(ctx,
			AssetInput{Ticker: "NVDA", AssetClassID: class.ID, Name: "NVIDIA"},
			TransactionInput{
				Date:          testutil.Date(2024, 5, 1),
				Type:          models.TransactionType("SPLIT"),
				Quantity:      testutil.Dec(t, "3"),
				PricePerShare: testutil.Dec(t, "900"),
			})
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")

		_, err = svc.GetAssetByTicker(ctx, "NVDA")
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})

	t.Run("reuses_existing_asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, nil)
		existing := testutil.CreateTestAssetWithParams(t, db, "NVDA", "NVIDIA", "Equity")

		asset, tx, err := svc.AddAssetWithTransaction(ctx,
			AssetInput{Ticker: "NVDA", AssetClassID: existing.AssetClassID, Name: "Renamed"},
			TransactionInput{
				Date:          testutil.Date(2024, 5, 1),
				Type:          models.TransactionTypeDividend,
				Quantity:      testutil.Dec(t, "3"),
				PricePerShare: testutil.Dec(t, "0.04"),
			})
		testutil.AssertNoError(t, err)

		if asset.ID != existing.ID || asset.Name != "NVIDIA" {
			t.Errorf("expected existing asset unchanged, got %+v", asset)
		}
		if tx.AssetID != existing.ID {
			t.Errorf("expected transaction on existing asset, got %d", tx.AssetID)
		}
	})
}
