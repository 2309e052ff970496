package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "portfoliotracker/internal/errors"
	"portfoliotracker/internal/models"
	"portfoliotracker/internal/services"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	AssetID         uint            `json:"asset_id" binding:"required"`
	TransactionType string          `json:"transaction_type" binding:"required,transaction_type"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required,gt=0" swaggertype:"string"`
	PricePerShare   decimal.Decimal `json:"price_per_share" binding:"required,gt=0" swaggertype:"string"`
	TransactionDate *string         `json:"transaction_date"`
}

// TransactionResponse wraps a single transaction.
type TransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
}

// TransactionListResponse wraps the transaction list.
type TransactionListResponse struct {
	Transactions []services.TransactionEntry `json:"transactions"`
}

// CreateTransaction handles recording a transaction
// @Summary     Record a transaction
// @Description Record a BUY, SELL or DIVIDEND against an asset; total_cost is quantity × price_per_share
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
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

	transaction, err := h.transactionService.AddTransaction(c.Request.Context(), services.TransactionInput{
		AssetID:       req.AssetID,
		Date:          date,
		Type:          txType,
		Quantity:      req.Quantity,
		PricePerShare: req.PricePerShare,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// ListTransactions handles listing transactions
// @Summary     List transactions
// @Description Get every transaction with its ticker, most recent first
// @Tags        transactions
// @Produce     json
// @Success     200 {object} TransactionListResponse "Transactions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// DeleteTransaction handles deleting a transaction
// @Summary     Delete a transaction
// @Description Delete a transaction by ID; an unknown id is ignored
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
