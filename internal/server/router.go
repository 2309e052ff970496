// Package server assembles the HTTP router from the portfolio services.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"portfoliotracker/internal/cache"
	_ "portfoliotracker/internal/docs" // Import swagger docs
	"portfoliotracker/internal/handlers"
	"portfoliotracker/internal/middleware"
	"portfoliotracker/internal/services"
)

// Services bundles the data access and aggregation layers the API serves.
type Services struct {
	Assets       services.AssetServicer
	Transactions services.TransactionServicer
	Insights     services.InsightServicer
}

// NewServices wires every service to db, sharing one insight cache.
func NewServices(db *gorm.DB, store cache.Store) Services {
	return Services{
		Assets:       services.NewAssetService(db, store),
		Transactions: services.NewTransactionService(db, store),
		Insights:     services.NewInsightService(db, store),
	}
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(svc Services) *gin.Engine {
	assetHandler := handlers.NewAssetHandler(svc.Assets)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions)
	insightHandler := handlers.NewInsightHandler(svc.Insights)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.GET("/asset-classes", assetHandler.ListAssetClasses)

	assets := v1.Group("/assets")
	assets.GET("", assetHandler.ListAssets)
	assets.POST("", assetHandler.AddAsset)
	assets.POST("/with-transaction", assetHandler.AddAssetWithTransaction)
	assets.GET("/ticker/:ticker", assetHandler.GetAssetByTicker)
	assets.PUT("/:id", assetHandler.UpdateAsset)
	assets.DELETE("/:id", assetHandler.DeleteAsset)

	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	v1.GET("/portfolio/value", insightHandler.GetPortfolioValue)
	v1.GET("/insights", insightHandler.GetInsights)

	return router
}
