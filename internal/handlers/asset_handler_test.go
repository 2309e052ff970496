package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "portfoliotracker/internal/errors"
	"portfoliotracker/internal/models"
	"portfoliotracker/internal/services"
)

// --- mock asset service ---

type mockAssetService struct {
	addAssetFn                func(ctx context.Context, ticker string, assetClassID uint, name string) (*models.Asset, bool, error)
	addAssetWithTransactionFn func(ctx context.Context, asset services.AssetInput, tx services.TransactionInput) (*models.Asset, *models.Transaction, error)
	listAssetsFn              func(ctx context.Context) ([]services.AssetSummary, error)
	listAssetClassesFn        func(ctx context.Context) ([]models.AssetClass, error)
	getAssetByTickerFn        func(ctx context.Context, ticker string) (*models.Asset, error)
	updateAssetNameFn         func(ctx context.Context, assetID uint, name string) error
	deleteAssetFn             func(ctx context.Context, assetID uint) error
}

func (m *mockAssetService) AddAsset(ctx context.Context, ticker string, assetClassID uint, name string) (*models.Asset, bool, error) {
	if m.addAssetFn != nil {
		return m.addAssetFn(ctx, ticker, assetClassID, name)
	}
	return &models.Asset{}, true, nil
}

func (m *mockAssetService) AddAssetWithTransaction(ctx context.Context, asset services.AssetInput, tx services.TransactionInput) (*models.Asset, *models.Transaction, error) {
	if m.addAssetWithTransactionFn != nil {
		return m.addAssetWithTransactionFn(ctx, asset, tx)
	}
	return &models.Asset{}, &models.Transaction{}, nil
}

func (m *mockAssetService) ListAssets(ctx context.Context) ([]services.AssetSummary, error) {
	if m.listAssetsFn != nil {
		return m.listAssetsFn(ctx)
	}
	return []services.AssetSummary{}, nil
}

func (m *mockAssetService) ListAssetClasses(ctx context.Context) ([]models.AssetClass, error) {
	if m.listAssetClassesFn != nil {
		return m.listAssetClassesFn(ctx)
	}
	return []models.AssetClass{}, nil
}

func (m *mockAssetService) GetAssetByTicker(ctx context.Context, ticker string) (*models.Asset, error) {
	if m.getAssetByTickerFn != nil {
		return m.getAssetByTickerFn(ctx, ticker)
	}
	return &models.Asset{}, nil
}

func (m *mockAssetService) UpdateAssetName(ctx context.Context, assetID uint, name string) error {
	if m.updateAssetNameFn != nil {
		return m.updateAssetNameFn(ctx, assetID, name)
	}
	return nil
}

func (m *mockAssetService) DeleteAsset(ctx context.Context, assetID uint) error {
	if m.deleteAssetFn != nil {
		return m.deleteAssetFn(ctx, assetID)
	}
	return nil
}

// verify interface compliance
var _ services.AssetServicer = (*mockAssetService)(nil)

func setupAssetRouter(handler *AssetHandler) *gin.Engine {
	r := gin.New()
	r.GET("/asset-classes", handler.ListAssetClasses)
	r.GET("/assets", handler.ListAssets)
	r.POST("/assets", handler.AddAsset)
	r.POST("/assets/with-transaction", handler.AddAssetWithTransaction)
	r.GET("/assets/ticker/:ticker", handler.GetAssetByTicker)
	r.PUT("/assets/:id", handler.UpdateAsset)
	r.DELETE("/assets/:id", handler.DeleteAsset)
	return r
}

func TestAssetHandler_AddAsset(t *testing.T) {
	t.Run("returns 201 when created", func(t *testing.T) {
		var gotTicker string
		svc := &mockAssetService{
			addAssetFn: func(_ context.Context, ticker string, classID uint, name string) (*models.Asset, bool, error) {
				gotTicker = ticker
				return &models.Asset{Base: models.Base{ID: 1}, Ticker: ticker, AssetClassID: classID, Name: name}, true, nil
			},
		}
		r := setupAssetRouter(NewAssetHandler(svc))

		rec := doRequest(r, "POST", "/assets", `{"ticker":"aapl","asset_class_id":1,"name":"Apple Inc"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotTicker != "AAPL" {
			t.Errorf("expected ticker to be upper-cased, got %q", gotTicker)
		}
		result := parseJSON(t, rec)
		if result["created"] != true {
			t.Errorf("expected created=true, got %v", result["created"])
		}
		asset := result["asset"].(map[string]interface{})
		if asset["ticker"] != "AAPL" {
			t.Errorf("expected ticker AAPL, got %v", asset["ticker"])
		}
	})

	t.Run("returns 200 when ticker exists", func(t *testing.T) {
		svc := &mockAssetService{
			addAssetFn: func(_ context.Context, ticker string, _ uint, _ string) (*models.Asset, bool, error) {
				return &models.Asset{Base: models.Base{ID: 7}, Ticker: ticker, Name: "Apple Inc"}, false, nil
			},
		}
		r := setupAssetRouter(NewAssetHandler(svc))

		rec := doRequest(r, "POST", "/assets", `{"ticker":"AAPL","asset_class_id":1,"name":"Other"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseJSON(t, rec)["created"] != false {
			t.Error("expected created=false")
		}
	})

	t.Run("returns 400 on invalid ticker", func(t *testing.T) {
		r := setupAssetRouter(NewAssetHandler(&mockAssetService{}))

		rec := doRequest(r, "POST", "/assets", `{"ticker":"AA PL","asset_class_id":1,"name":"Apple"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupAssetRouter(NewAssetHandler(&mockAssetService{}))

		rec := doRequest(r, "POST", "/assets", `{"ticker":"AAPL","asset_class_id":1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 on unknown class", func(t *testing.T) {
		svc := &mockAssetService{
			addAssetFn: func(_ context.Context, _ string, _ uint, _ string) (*models.Asset, bool, error) {
				return nil, false, apperrors.ErrAssetClassNotFound
			},
		}
		r := setupAssetRouter(NewAssetHandler(svc))

		rec := doRequest(r, "POST", "/assets", `{"ticker":"AAPL","asset_class_id":999,"name":"Apple"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ASSET_CLASS_NOT_FOUND")
	})
}

func TestAssetHandler_ListAssets(t *testing.T) {
	t.Run("returns 200 with assets", func(t *testing.T) {
		svc := &mockAssetService{
			listAssetsFn: func(context.Context) ([]services.AssetSummary, error) {
				return []services.AssetSummary{
					{ID: 1, Ticker: "AAPL", Name: "Apple Inc", ClassName: "Equity"},
					{ID: 2, Ticker: "BND", Name: "Total Bond", ClassName: "Bond"},
				}, nil
			},
		}
		r := setupAssetRouter(NewAssetHandler(svc))

		rec := doRequest(r, "GET", "/assets", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		assets := parseJSON(t, rec)["assets"].([]interface{})
		if len(assets) != 2 {
			t.Fatalf("expected 2 assets, got %d", len(assets))
		}
		if assets[1].(map[string]interface{})["class_name"] != "Bond" {
			t.Errorf("expected class_name Bond, got %v", assets[1])
		}
	})

	t.Run("returns 500 on store failure", func(t *testing.T) {
		svc := &mockAssetService{
			listAssetsFn: func(context.Context) ([]services.AssetSummary, error) {
				return nil, apperrors.ErrStoreFailure
			},
		}
		r := setupAssetRouter(NewAssetHandler(svc))

		rec := doRequest(r, "GET", "/assets", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "STORE_FAILURE")
	})
}

func TestAssetHandler_ListAssetClasses(t *testing.T) {
	svc := &mockAssetService{
		listAssetClassesFn: func(context.Context) ([]models.AssetClass, error) {
			return []models.AssetClass{{Base: models.Base{ID: 1}, Name: "Equity"}}, nil
		},
	}
	r := setupAssetRouter(NewAssetHandler(svc))

	rec := doRequest(r, "GET", "/asset-classes", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	classes := parseJSON(t, rec)["asset_classes"].([]interface{})
	if len(classes) != 1 || classes[0].(map[string]interface{})["name"] != "Equity" {
		t.Errorf("unexpected classes %v", classes)
	}
}

func TestAssetHandler_AddAssetWithTransaction(t *testing.T) {
	t.Run("returns 201 and passes normalized input", func(t *testing.T) {
		var gotAsset services.AssetInput
		var gotTx services.TransactionInput
		svc := &mockAssetService{
			addAssetWithTransactionFn: func(_ context.Context, a services.AssetInput, tx services.TransactionInput) (*models.Asset, *models.Transaction, error) {
				gotAsset, gotTx = a, tx
				asset := &models.Asset{Base: models.Base{ID: 3}, Ticker: a.Ticker, Name: a.Name}
				return asset, models.NewTransaction(asset.ID, tx.Date, tx.Type, tx.Quantity, tx.PricePerShare), nil
			},
		}
		r := setupAssetRouter(NewAssetHandler(svc))

		rec := doRequest(r, "POST", "/assets/with-transaction",
			`{"ticker":"nvda","asset_class_id":1,"name":"NVIDIA","transaction_type":"buy","quantity":"3","price_per_share":900.5,"transaction_date":"2024-05-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotAsset.Ticker != "NVDA" {
			t.Errorf("expected NVDA, got %q", gotAsset.Ticker)
		}
		if gotTx.Type != models.TransactionTypeBuy {
			t.Errorf("expected BUY, got %q", gotTx.Type)
		}
		if !gotTx.Date.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected date %s", gotTx.Date)
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["total_cost"] != "2701.5" {
			t.Errorf("expected total_cost 2701.5, got %v", tx["total_cost"])
		}
	})

	t.Run("returns 400 on bad transaction type", func(t *testing.T) {
		r := setupAssetRouter(NewAssetHandler(&mockAssetService{}))

		rec := doRequest(r, "POST", "/assets/with-transaction",
			`{"ticker":"NVDA","asset_class_id":1,"name":"NVIDIA","transaction_type":"split","quantity":1,"price_per_share":1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad date", func(t *testing.T) {
		r := setupAssetRouter(NewAssetHandler(&mockAssetService{}))

		rec := doRequest(r, "POST", "/assets/with-transaction",
			`{"ticker":"NVDA","asset_class_id":1,"name":"NVIDIA","transaction_type":"BUY","quantity":1,"price_per_share":1,"transaction_date":"May 1"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestAssetHandler_GetAssetByTicker(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		svc := &mockAssetService{
			getAssetByTickerFn: func(_ context.Context, ticker string) (*models.Asset, error) {
				return &models.Asset{Base: models.Base{ID: 1}, Ticker: ticker, Name: "Apple Inc"}, nil
			},
		}
		r := setupAssetRouter(NewAssetHandler(svc))

		rec := doRequest(r, "GET", "/assets/ticker/aapl", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		asset := parseJSON(t, rec)["asset"].(map[string]interface{})
		if asset["ticker"] != "AAPL" {
			t.Errorf("expected AAPL, got %v", asset["ticker"])
		}
	})

	t.Run("returns 404", func(t *testing.T) {
		svc := &mockAssetService{
			getAssetByTickerFn: func(context.Context, string) (*models.Asset, error) {
				return nil, apperrors.ErrAssetNotFound
			},
		}
		r := setupAssetRouter(NewAssetHandler(svc))

		rec := doRequest(r, "GET", "/assets/ticker/ZZZ", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ASSET_NOT_FOUND")
	})
}

func TestAssetHandler_UpdateAsset(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		var gotID uint
		var gotName string
		svc := &mockAssetService{
			updateAssetNameFn: func(_ context.Context, id uint, name string) error {
				gotID, gotName = id, name
				return nil
			},
		}
		r := setupAssetRouter(NewAssetHandler(svc))

		rec := doRequest(r, "PUT", "/assets/5", `{"name":"Apple Inc."}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotID != 5 || gotName != "Apple Inc." {
			t.Errorf("unexpected call id=%d name=%q", gotID, gotName)
		}
	})

	t.Run("returns 400 on invalid id", func(t *testing.T) {
		r := setupAssetRouter(NewAssetHandler(&mockAssetService{}))

		rec := doRequest(r, "PUT", "/assets/abc", `{"name":"Apple"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAssetHandler_DeleteAsset(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		var gotID uint
		svc := &mockAssetService{
			deleteAssetFn: func(_ context.Context, id uint) error {
				gotID = id
				return nil
			},
		}
		r := setupAssetRouter(NewAssetHandler(svc))

		rec := doRequest(r, "DELETE", "/assets/9", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotID != 9 {
			t.Errorf("expected id 9, got %d", gotID)
		}
	})

	t.Run("returns 400 on zero id", func(t *testing.T) {
		r := setupAssetRouter(NewAssetHandler(&mockAssetService{}))

		rec := doRequest(r, "DELETE", "/assets/0", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
