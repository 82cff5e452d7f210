package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/api/middleware"
	"github.com/sphera-world/market-engine/internal/api/shared/dto"
	"github.com/sphera-world/market-engine/internal/api/shared/executor"
	"github.com/sphera-world/market-engine/internal/domain"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetAccountBalance returns an account's balance
	// GET /api/v1/balance/:accountId
	GetAccountBalance(c *gin.Context)

	// GetNFTs returns a page of NFTs; an authenticated caller gets ownership flags
	// GET /api/v1/nfts?accountId=&tokenId=&serialNumber=&nftCreator=&searchQuery=&isMarketListed=&page=&pageSize=&orderBy=&orderDirection=
	GetNFTs(c *gin.Context)

	// GetCollections returns a page of validated collections
	// GET /api/v1/nfts/collections?accountId=&tokenId=&nftCreator=&page=&pageSize=
	GetCollections(c *gin.Context)

	// GetActivities returns the sale history of an NFT
	// GET /api/v1/nfts/activities?tokenId=&serialNumber=
	GetActivities(c *gin.Context)

	// GetTransactions returns a page of an account's transactions
	// GET /api/v1/transactions?accountId=&page=&pageSize=&orderDirection=
	GetTransactions(c *gin.Context)

	// CheckNftAllowance reports whether the marketplace may transfer an NFT
	// GET /api/v1/nfts/allowance?ownerId=&tokenId=&serialNumber=
	CheckNftAllowance(c *gin.Context)

	// CheckTokenAssociation reports whether an account is associated with a token
	// GET /api/v1/tokens/association?accountId=&tokenId=
	CheckTokenAssociation(c *gin.Context)

	// GetEVMAddress returns an account's EVM address
	// GET /api/v1/evm/:accountId
	GetEVMAddress(c *gin.Context)

	// GetBids returns a page of the bids on an NFT
	// GET /api/v1/nft-market/bids?tokenId=&serialNumber=&page=&pageSize=
	GetBids(c *gin.Context)

	// GetAccountBids returns a page of the bids an account received or sent
	// GET /api/v1/nft-market/bids/:accountId?type=received|sent&page=&pageSize=
	GetAccountBids(c *gin.Context)

	// GetBid returns an account's bid on an NFT
	// GET /api/v1/nft-market/bid?tokenId=&serialNumber=&accountId=
	GetBid(c *gin.Context)

	// GetMarketItemInfo returns the reconciled listing of an NFT. When the cache has
	// drifted from the contract it is rewritten and an orphaned expiry job is cancelled.
	// GET /api/v1/nft-market/listed-info?tokenId=&serialNumber=
	GetMarketItemInfo(c *gin.Context)

	// GetPriceHistory returns the daily prices of an NFT over a month
	// GET /api/v1/nft-market/deals/price-history?tokenId=&serialNumber=&timestamp=
	GetPriceHistory(c *gin.Context)

	// PostDeal queues the verification of a claimed bid acceptance (requires authentication)
	// POST /api/v1/nft-market/deals
	PostDeal(c *gin.Context)

	// PostMarketItems lists or unlists the caller's NFTs (requires authentication)
	// POST /api/v1/nft-market/items
	PostMarketItems(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

func (h *handler) GetAccountBalance(c *gin.Context) {
	accountID := c.Param("accountId")
	balance, err := h.executor.GetAccountBalance(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err, "Failed to get account balance", zap.String("accountId", accountID))
		return
	}
	c.JSON(http.StatusOK, balance)
}

func (h *handler) GetNFTs(c *gin.Context) {
	query, err := ParseGetNFTsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var caller *domain.Caller
	if cl, ok := middleware.CallerFrom(c); ok {
		caller = &cl
	}
	response, err := h.executor.GetNFTs(c.Request.Context(), caller, *query)
	if err != nil {
		respondError(c, err, "Failed to get nfts")
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) GetCollections(c *gin.Context) {
	query, err := ParseGetCollectionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetCollections(c.Request.Context(), *query)
	if err != nil {
		respondError(c, err, "Failed to get collections")
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) GetActivities(c *gin.Context) {
	var params NftQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetActivities(c.Request.Context(), params.TokenID, params.SerialNumber)
	if err != nil {
		respondError(c, err, "Failed to get nft activities")
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) GetTransactions(c *gin.Context) {
	var params GetTransactionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetTransactions(c.Request.Context(), params.AccountID, params.Pagination("consensus_timestamp"))
	if err != nil {
		respondError(c, err, "Failed to get transactions", zap.String("accountId", params.AccountID))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) CheckNftAllowance(c *gin.Context) {
	var params GetAllowanceQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.CheckNftAllowance(c.Request.Context(), params.OwnerID, params.TokenID, params.SerialNumber)
	if err != nil {
		respondError(c, err, "Failed to check nft allowance")
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) CheckTokenAssociation(c *gin.Context) {
	var params GetAssociationQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.CheckTokenAssociation(c.Request.Context(), params.AccountID, params.TokenID)
	if err != nil {
		respondError(c, err, "Failed to check token association")
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) GetEVMAddress(c *gin.Context) {
	accountID := c.Param("accountId")
	response, err := h.executor.GetEVMAddress(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err, "Failed to get evm address", zap.String("accountId", accountID))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) GetBids(c *gin.Context) {
	var params GetBidsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	p := PageQueryParams{Page: params.Page, PageSize: params.PageSize}.Pagination("")
	response, err := h.executor.GetBidsForToken(c.Request.Context(), params.TokenID, params.SerialNumber, p)
	if err != nil {
		respondError(c, err, "Failed to get bids")
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) GetAccountBids(c *gin.Context) {
	accountID := c.Param("accountId")
	direction, p, err := ParseGetAccountBidsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetAccountBids(c.Request.Context(), accountID, direction, p)
	if err != nil {
		respondError(c, err, "Failed to get account bids", zap.String("accountId", accountID))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) GetBid(c *gin.Context) {
	var params GetBidQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetBid(c.Request.Context(), params.TokenID, params.SerialNumber, params.AccountID)
	if err != nil {
		respondError(c, err, "Failed to get bid")
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) GetMarketItemInfo(c *gin.Context) {
	var params NftQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	info, err := h.executor.GetMarketItemInfo(c.Request.Context(), params.TokenID, params.SerialNumber)
	if err != nil {
		respondError(c, err, "Failed to get market item info",
			zap.String("tokenId", params.TokenID),
			zap.String("serialNumber", params.SerialNumber))
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *handler) GetPriceHistory(c *gin.Context) {
	var params GetPriceHistoryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetPriceHistory(c.Request.Context(), params.TokenID, params.SerialNumber, params.Timestamp)
	if err != nil {
		respondError(c, err, "Failed to get price history")
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) PostDeal(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req dto.MarketDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.executor.QueueDeal(c.Request.Context(), caller, req.Claim()); err != nil {
		respondError(c, err, "Failed to queue deal", zap.String("transactionId", req.TransactionID))
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Success"})
}

func (h *handler) PostMarketItems(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req dto.MarketItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.executor.SetMarketItems(c.Request.Context(), caller, req); err != nil {
		respondError(c, err, "Failed to update market items", zap.String("accountId", caller.AccountID))
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Success"})
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
