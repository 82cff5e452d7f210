package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/sphera-world/market-engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, auth *middleware.Authenticator) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Account reads (public)
		v1.GET("/balance/:accountId", handler.GetAccountBalance)
		v1.GET("/evm/:accountId", handler.GetEVMAddress)
		v1.GET("/transactions", handler.GetTransactions)
		v1.GET("/tokens/association", handler.CheckTokenAssociation)

		// NFT reads; a signed-in caller sees which NFTs they own
		v1.GET("/nfts", middleware.OptionalAuth(auth), handler.GetNFTs)
		v1.GET("/nfts/collections", handler.GetCollections)
		v1.GET("/nfts/activities", handler.GetActivities)
		v1.GET("/nfts/allowance", handler.CheckNftAllowance)

		// Market reads (public)
		market := v1.Group("/nft-market")
		market.GET("/bids", handler.GetBids)
		market.GET("/bids/:accountId", handler.GetAccountBids)
		market.GET("/bid", handler.GetBid)
		market.GET("/listed-info", handler.GetMarketItemInfo)
		market.GET("/deals/price-history", handler.GetPriceHistory)

		// Market writes (requires authentication)
		market.POST("/deals", middleware.Auth(auth), handler.PostDeal)
		market.POST("/items", middleware.Auth(auth), handler.PostMarketItems)
	}
}
