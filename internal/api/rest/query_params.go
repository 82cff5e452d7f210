package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/sphera-world/market-engine/internal/aggregator"
	"github.com/sphera-world/market-engine/internal/domain"
)

// PageQueryParams holds the paging query parameters shared by list endpoints
type PageQueryParams struct {
	Page           int    `form:"page,default=1"`
	PageSize       int    `form:"pageSize,default=10"`
	OrderBy        string `form:"orderBy"`
	OrderDirection string `form:"orderDirection,default=desc"`
}

// Pagination converts the parameters into a normalized pagination
func (p PageQueryParams) Pagination(defaultOrderBy string) domain.Pagination {
	return domain.Pagination{
		Page:      p.Page,
		PageSize:  p.PageSize,
		OrderBy:   p.OrderBy,
		Direction: domain.SortDirection(p.OrderDirection),
	}.Normalize(defaultOrderBy)
}

// GetNFTsQueryParams holds query parameters for GET /nfts
type GetNFTsQueryParams struct {
	PageQueryParams
	AccountID      string `form:"accountId"`
	TokenID        string `form:"tokenId"`
	SerialNumber   string `form:"serialNumber"`
	NftCreator     string `form:"nftCreator"`
	SearchQuery    string `form:"searchQuery"`
	IsMarketListed bool   `form:"isMarketListed"`
}

// GetCollectionsQueryParams holds query parameters for GET /nfts/collections
type GetCollectionsQueryParams struct {
	PageQueryParams
	AccountID  string `form:"accountId"`
	TokenID    string `form:"tokenId"`
	NftCreator string `form:"nftCreator"`
}

// NftQueryParams identifies one NFT
type NftQueryParams struct {
	TokenID      string `form:"tokenId" binding:"required"`
	SerialNumber string `form:"serialNumber" binding:"required"`
}

// GetBidsQueryParams holds query parameters for GET /nft-market/bids
type GetBidsQueryParams struct {
	NftQueryParams
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=10"`
}

// GetAccountBidsQueryParams holds query parameters for GET /nft-market/bids/:accountId
type GetAccountBidsQueryParams struct {
	Type     string `form:"type,default=received"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=10"`
}

// GetBidQueryParams holds query parameters for GET /nft-market/bid
type GetBidQueryParams struct {
	NftQueryParams
	AccountID string `form:"accountId" binding:"required"`
}

// GetAllowanceQueryParams holds query parameters for GET /nfts/allowance
type GetAllowanceQueryParams struct {
	NftQueryParams
	OwnerID string `form:"ownerId" binding:"required"`
}

// GetAssociationQueryParams holds query parameters for GET /tokens/association
type GetAssociationQueryParams struct {
	AccountID string `form:"accountId" binding:"required"`
	TokenID   string `form:"tokenId" binding:"required"`
}

// GetPriceHistoryQueryParams holds query parameters for GET /nft-market/deals/price-history
type GetPriceHistoryQueryParams struct {
	NftQueryParams
	Timestamp int64 `form:"timestamp"`
}

// GetTransactionsQueryParams holds query parameters for GET /transactions
type GetTransactionsQueryParams struct {
	PageQueryParams
	AccountID string `form:"accountId" binding:"required"`
}

// ParseGetNFTsQuery parses query parameters for GET /nfts
func ParseGetNFTsQuery(c *gin.Context) (*aggregator.NftQuery, error) {
	var params GetNFTsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &aggregator.NftQuery{
		Creator:        params.NftCreator,
		AccountID:      params.AccountID,
		TokenID:        params.TokenID,
		SerialNumber:   params.SerialNumber,
		SearchQuery:    params.SearchQuery,
		IsMarketListed: params.IsMarketListed,
		Pagination:     params.Pagination("created_timestamp"),
	}, nil
}

// ParseGetCollectionsQuery parses query parameters for GET /nfts/collections
func ParseGetCollectionsQuery(c *gin.Context) (*aggregator.CollectionQuery, error) {
	var params GetCollectionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &aggregator.CollectionQuery{
		AccountID:  params.AccountID,
		TokenID:    params.TokenID,
		Creator:    params.NftCreator,
		Pagination: params.Pagination("created_timestamp"),
	}, nil
}

// ParseGetAccountBidsQuery parses query parameters for GET /nft-market/bids/:accountId
func ParseGetAccountBidsQuery(c *gin.Context) (aggregator.BidDirection, domain.Pagination, error) {
	var params GetAccountBidsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return "", domain.Pagination{}, err
	}

	direction := aggregator.BidDirection(params.Type)
	if direction != aggregator.BidsReceived && direction != aggregator.BidsSent {
		return "", domain.Pagination{}, fmt.Errorf("type must be %q or %q", aggregator.BidsReceived, aggregator.BidsSent)
	}
	return direction, domain.Pagination{Page: params.Page, PageSize: params.PageSize}.Normalize(""), nil
}
