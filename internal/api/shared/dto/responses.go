package dto

import "github.com/sphera-world/market-engine/internal/domain"

// MessageResponse is the body of mutating endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// NftListResponse represents a page of NFTs
type NftListResponse struct {
	Nfts       []domain.NftView `json:"nfts"`
	IsLastPage bool             `json:"isLastPage"`
}

// CollectionListResponse represents a page of collections
type CollectionListResponse struct {
	Collections []domain.CollectionView `json:"collections"`
	IsLastPage  bool                    `json:"isLastPage"`
}

// TransactionListResponse represents a page of account transactions
type TransactionListResponse struct {
	Transactions []domain.TransactionView `json:"transactions"`
	IsLastPage   bool                     `json:"isLastPage"`
}

// BidListResponse represents a page of bids
type BidListResponse struct {
	Bids       []domain.BidView `json:"bids"`
	IsLastPage bool             `json:"isLastPage"`
}

// BidResponse wraps a single bid
type BidResponse struct {
	Bid *domain.BidView `json:"bid"`
}

// ActivitiesResponse represents the activity feed of an NFT
type ActivitiesResponse struct {
	History []domain.Activity `json:"history"`
}

// PriceHistoryResponse represents the daily prices of an NFT over a month
type PriceHistoryResponse struct {
	History []domain.PriceHistoryChunk `json:"history"`
}

// AllowanceResponse reports an NFT allowance
type AllowanceResponse struct {
	HasAllowance bool `json:"hasAllowance"`
}

// AssociationResponse reports a token association
type AssociationResponse struct {
	IsAssociated bool `json:"isAssociated"`
}

// EvmAddressResponse carries an account's EVM address
type EvmAddressResponse struct {
	EvmAddress string `json:"evmAddress"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string `json:"status"`
}
