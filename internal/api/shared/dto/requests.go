package dto

import (
	"encoding/json"
	"time"

	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/listing"
)

// MarketDealRequest represents the body of POST /nft-market/deals.
// Price and serial number accept JSON numbers or numeric strings.
type MarketDealRequest struct {
	OwnerID       string      `json:"ownerId" binding:"required"`
	BuyerID       string      `json:"buyerId" binding:"required"`
	TransactionID string      `json:"transactionId" binding:"required"`
	Price         json.Number `json:"price" binding:"required"`
	TokenID       string      `json:"tokenId" binding:"required"`
	SerialNumber  json.Number `json:"serialNumber" binding:"required"`
}

// Claim converts the request into a deal claim
func (r MarketDealRequest) Claim() domain.VerifyDealJob {
	return domain.VerifyDealJob{
		OwnerAccountID: r.OwnerID,
		BuyerAccountID: r.BuyerID,
		TransactionID:  r.TransactionID,
		Price:          r.Price.String(),
		TokenID:        r.TokenID,
		SerialNumber:   r.SerialNumber.String(),
	}
}

// MarketItem identifies one NFT of a POST /nft-market/items request
type MarketItem struct {
	TokenID      string      `json:"token_id"`
	SerialNumber json.Number `json:"serial_number"`
}

// MarketItemsRequest represents the body of POST /nft-market/items
type MarketItemsRequest struct {
	Nfts     []MarketItem `json:"nfts"`
	Price    json.Number  `json:"price"`
	IsListed bool         `json:"isListed"`
	// ListingEndTimestamp is in unix milliseconds
	ListingEndTimestamp int64 `json:"listingEndTimestamp"`
}

// Items converts the requested NFTs into listing items
func (r MarketItemsRequest) Items() []listing.Item {
	items := make([]listing.Item, len(r.Nfts))
	for i, n := range r.Nfts {
		items[i] = listing.Item{TokenID: n.TokenID, SerialNumber: n.SerialNumber.String()}
	}
	return items
}

// End returns the listing end, or nil when none was given
func (r MarketItemsRequest) End() *time.Time {
	if r.ListingEndTimestamp == 0 {
		return nil
	}
	end := time.UnixMilli(r.ListingEndTimestamp)
	return &end
}

// DesiredPrice returns the price as a decimal string, "0" when omitted
func (r MarketItemsRequest) DesiredPrice() string {
	if r.Price == "" {
		return "0"
	}
	return r.Price.String()
}
