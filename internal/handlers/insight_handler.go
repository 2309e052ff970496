package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"portfoliotracker/internal/services"
)

// InsightHandler serves portfolio aggregates.
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// PortfolioValueResponse carries the net invested amount.
type PortfolioValueResponse struct {
	TotalValue decimal.Decimal `json:"total_value" swaggertype:"string"`
}

// InsightsResponse wraps the aggregate metrics.
type InsightsResponse struct {
	Insights services.Insights `json:"insights"`
}

// GetPortfolioValue handles the portfolio value request.
// @Summary     Get portfolio value
// @Description Sum of BUY total cost minus sum of SELL total cost; dividends are excluded
// @Tags        insights
// @Produce     json
// @Success     200 {object} PortfolioValueResponse "Portfolio value"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/value [get]
func (h *InsightHandler) GetPortfolioValue(c *gin.Context) {
	value, err := h.insightService.GetTotalPortfolioValue(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_value": value})
}

// GetInsights handles the insights request.
// @Summary     Get insights
// @Description Asset counts per class plus BUY and transaction value aggregates
// @Tags        insights
// @Produce     json
// @Success     200 {object} InsightsResponse "Insights"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights [get]
func (h *InsightHandler) GetInsights(c *gin.Context) {
	insights, err := h.insightService.GetInsights(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}
