package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "portfoliotracker/internal/errors"
	"portfoliotracker/internal/models"
	"portfoliotracker/internal/services"
)

// AssetHandler handles asset and asset class requests.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// AddAssetRequest represents the request payload for adding an asset.
type AddAssetRequest struct {
	Ticker       string `json:"ticker" binding:"required,ticker"`
	AssetClassID uint   `json:"asset_class_id" binding:"required"`
	Name         string `json:"name" binding:"required,min=1,max=200"`
}

// AddAssetWithTransactionRequest adds an asset and its first transaction.
type AddAssetWithTransactionRequest struct {
	Ticker          string          `json:"ticker" binding:"required,ticker"`
	AssetClassID    uint            `json:"asset_class_id" binding:"required"`
	Name            string          `json:"name" binding:"required,min=1,max=200"`
	TransactionType string          `json:"transaction_type" binding:"required,transaction_type"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required,gt=0" swaggertype:"string"`
	PricePerShare   decimal.Decimal `json:"price_per_share" binding:"required,gt=0" swaggertype:"string"`
	TransactionDate *string         `json:"transaction_date"`
}

// UpdateAssetRequest represents the request payload for renaming an asset.
type UpdateAssetRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// AssetResponse wraps a single asset.
type AssetResponse struct {
	Asset   models.Asset `json:"asset"`
	Created bool         `json:"created"`
}

// AssetListResponse wraps the asset list.
type AssetListResponse struct {
	Assets []services.AssetSummary `json:"assets"`
}

// AssetClassListResponse wraps the asset class list.
type AssetClassListResponse struct {
	AssetClasses []models.AssetClass `json:"asset_classes"`
}

// AssetWithTransactionResponse wraps an asset and the transaction recorded with it.
type AssetWithTransactionResponse struct {
	Asset       models.Asset       `json:"asset"`
	Transaction models.Transaction `json:"transaction"`
}

// ListAssetClasses handles listing asset classes.
// @Summary     List asset classes
// @Description Get every asset class
// @Tags        assets
// @Produce     json
// @Success     200 {object} AssetClassListResponse "Asset classes"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /asset-classes [get]
func (h *AssetHandler) ListAssetClasses(c *gin.Context) {
	classes, err := h.assetService.ListAssetClasses(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset_classes": classes})
}

// ListAssets handles listing assets.
// @Summary     List assets
// @Description Get every asset with its class name, ordered by ticker
// @Tags        assets
// @Produce     json
// @Success     200 {object} AssetListResponse "Assets"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.assetService.ListAssets(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// AddAsset handles adding an asset. Adding a ticker that already exists is
// not an error: the existing asset is returned with status 200.
// @Summary     Add asset
// @Description Add an asset; an existing ticker is left unchanged
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       request body AddAssetRequest true "Asset details"
// @Success     201 {object} AssetResponse "Asset created"
// @Success     200 {object} AssetResponse "Ticker already existed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset class not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [post]
func (h *AssetHandler) AddAsset(c *gin.Context) {
	var req AddAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, created, err := h.assetService.AddAsset(c.Request.Context(), normalizeTicker(req.Ticker), req.AssetClassID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"asset": asset, "created": created})
}

// AddAssetWithTransaction handles adding an asset together with its first transaction.
// @Summary     Add asset with transaction
// @Description Add (or reuse) an asset and record a transaction for it atomically
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       request body AddAssetWithTransactionRequest true "Asset and transaction details"
// @Success     201 {object} AssetWithTransactionResponse "Asset and transaction recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset class not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/with-transaction [post]
func (h *AssetHandler) AddAssetWithTransaction(c *gin.Context) {
	var req AddAssetWithTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := transactionDate(req.TransactionDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	txType, _ := models.ParseTransactionType(req.TransactionType)

	asset, transaction, err := h.assetService.AddAssetWithTransaction(c.Request.Context(),
		services.AssetInput{
			Ticker:       normalizeTicker(req.Ticker),
			AssetClassID: req.AssetClassID,
			Name:         req.Name,
		},
		services.TransactionInput{
			Date:          date,
			Type:          txType,
			Quantity:      req.Quantity,
			PricePerShare: req.PricePerShare,
		})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset": asset, "transaction": transaction})
}

// GetAssetByTicker handles looking up an asset by ticker.
// @Summary     Get asset by ticker
// @Description Get the asset with the given ticker
// @Tags        assets
// @Produce     json
// @Param       ticker path string true "Ticker symbol"
// @Success     200 {object} AssetResponse "Asset details"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/ticker/{ticker} [get]
func (h *AssetHandler) GetAssetByTicker(c *gin.Context) {
	asset, err := h.assetService.GetAssetByTicker(c.Request.Context(), normalizeTicker(c.Param("ticker")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// UpdateAsset handles renaming an asset.
// @Summary     Rename asset
// @Description Change an asset's display name; an unknown id is ignored
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id      path int                true "Asset ID"
// @Param       request body UpdateAssetRequest true "New name"
// @Success     200 {object} MessageResponse "Asset updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.assetService.UpdateAssetName(c.Request.Context(), assetID, req.Name); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset updated successfully"})
}

// DeleteAsset handles deleting an asset and all of its transactions.
// @Summary     Delete asset
// @Description Delete an asset together with its transactions; an unknown id is ignored
// @Tags        assets
// @Produce     json
// @Param       id path int true "Asset ID"
// @Success     200 {object} MessageResponse "Asset deleted"
// @Failure     400 {object} ErrorResponse "Invalid asset ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetService.DeleteAsset(c.Request.Context(), assetID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}

// transactionDate parses an optional request date, defaulting to today in UTC.
func transactionDate(raw *string) (time.Time, error) {
	if raw == nil || *raw == "" {
		return time.Now().UTC(), nil
	}
	parsed, err := parseFlexibleTime(*raw)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return parsed, nil
}
