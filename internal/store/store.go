package store

import (
	"context"
	"time"

	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/store/schema"
)

// NftQueryFilter narrows ListNfts. Limit is the number of rows to fetch (page size + 1).
type NftQueryFilter struct {
	// AccountID restricts to NFTs owned by the account
	AccountID *string
	// TokenID restricts to one collection
	TokenID *string
	// SerialNumber restricts to one serial; only meaningful with TokenID
	SerialNumber *string
	// Creator restricts to collections of the creator
	Creator *string
	// OnlyListed restricts to NFTs with an active listing
	OnlyListed bool
	// Search matches the collection name or the token (and serial) of the NFT
	Search *NftSearch
	// ExcludeAccountID drops NFTs owned by the account (trash collector)
	ExcludeAccountID *string
	// OrderBy is one of the NftOrderColumns; empty orders by last update
	OrderBy string
	// Ascending orders oldest first
	Ascending bool
	Limit     int
	Offset    int
}

// nftOrderColumns maps the accepted NFT order names to their cache columns
var nftOrderColumns = map[string]string{
	"updated_at":        "nfts.updated_at",
	"created_at":        "nfts.created_at",
	"created_timestamp": "nfts.created_timestamp",
	"token_id":          "nfts.token_id",
	"serial_number":     "nfts.serial_number::numeric",
}

// ValidNftOrder reports whether cached NFTs can be ordered by orderBy
func ValidNftOrder(orderBy string) bool {
	_, ok := nftOrderColumns[orderBy]
	return ok
}

// NftSearch is a free-text NFT search. An NFT matches when its collection name contains
// Name or when it belongs to TokenID (and SerialNumber, if set).
type NftSearch struct {
	Name         string
	TokenID      *string
	SerialNumber *string
}

// UpsertCollectionInput is a collection as seen by the indexer. Nil fields are left untouched.
type UpsertCollectionInput struct {
	TokenID             string
	Name                *string
	Symbol              *string
	MaxSupply           *string
	TotalSupply         *string
	RoyaltyFee          *string
	RoyaltyFeeCollector *string
	Creator             *string
	CreatedTimestamp    *time.Time
}

// UpsertNftInput is an NFT as seen by the indexer. Nil fields are left untouched.
type UpsertNftInput struct {
	TokenID          string
	SerialNumber     string
	AccountID        *string
	CreatedTimestamp *time.Time
	Metadata         *domain.NftMetadata
	Collection       *UpsertCollectionInput
}

// ListingUpdate is a partial update of an NFT's listing. Nil fields are left untouched.
// Setting IsListed to false always clears the job id.
type ListingUpdate struct {
	IsListed            *bool
	DesiredPrice        *string
	ListingEndTimestamp *time.Time
	JobID               *string
	ClearJobID          bool
}

// RecordDealInput is a verified deal
type RecordDealInput struct {
	NftID              int64
	OwnerAccountID     string
	BuyerAccountID     string
	Price              string
	TransactionID      string
	ConsensusTimestamp string
}

// ExpiredListing is a listed NFT whose end timestamp has passed
type ExpiredListing struct {
	NftID               int64
	ListingID           int64
	TokenID             string
	SerialNumber        string
	JobID               *string
	ListingEndTimestamp time.Time
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetNft retrieves an NFT with its listing, metadata and collection, or nil if unknown
	GetNft(ctx context.Context, tokenID, serialNumber string) (*schema.Nft, error)
	// ListNfts retrieves NFTs with their associations ordered newest first
	ListNfts(ctx context.Context, filter NftQueryFilter) ([]*schema.Nft, error)
	// UpsertNft merges an NFT (and its collection and metadata) into the cache without regressing populated columns
	UpsertNft(ctx context.Context, input UpsertNftInput) (*schema.Nft, error)

	// UpdateListing applies a partial listing update, creating the listing row if the NFT has none
	UpdateListing(ctx context.Context, nftID int64, update ListingUpdate) (*schema.NftMarketListing, error)
	// GetExpiredListings retrieves listed NFTs whose end timestamp is before now
	GetExpiredListings(ctx context.Context, now time.Time, limit int) ([]ExpiredListing, error)

	// GetDealByTransactionID retrieves a deal by its transaction id, or nil if unknown
	GetDealByTransactionID(ctx context.Context, transactionID string) (*schema.NftMarketDeal, error)
	// RecordDeal inserts a deal and moves the NFT to the buyer in one transaction.
	// A duplicate transaction id returns domain.ErrAlreadyProcessed.
	RecordDeal(ctx context.Context, input RecordDealInput) (*schema.NftMarketDeal, error)
	// GetDealsForNft retrieves deals of an NFT created in [from, to), oldest first
	GetDealsForNft(ctx context.Context, nftID int64, from, to time.Time) ([]schema.NftMarketDeal, error)
	// GetRecentDeals retrieves the latest deals of an NFT, newest first
	GetRecentDeals(ctx context.Context, nftID int64, limit int) ([]schema.NftMarketDeal, error)

	// GetCollection retrieves a collection by token id, or nil if unknown
	GetCollection(ctx context.Context, tokenID string) (*schema.NftCollection, error)
	// GetCollectionsByTokenIDs retrieves the known collections among tokenIDs keyed by token id
	GetCollectionsByTokenIDs(ctx context.Context, tokenIDs []string) (map[string]*schema.NftCollection, error)
	// UpsertCollection merges a collection into the cache without regressing populated columns
	UpsertCollection(ctx context.Context, input UpsertCollectionInput) (*schema.NftCollection, error)
	// EnsureCollections inserts the validated collections that are not cached yet
	EnsureCollections(ctx context.Context, collections []domain.ValidatedCollection) error

	// GetUserByAccountID retrieves a user by ledger account id, or nil if unknown
	GetUserByAccountID(ctx context.Context, accountID string) (*schema.User, error)
	// GetUserByEVMAddress retrieves a user by EVM address, or nil if unknown
	GetUserByEVMAddress(ctx context.Context, evmAddress string) (*schema.User, error)
	// GetUsersByAccountIDs retrieves the known users among accountIDs keyed by account id
	GetUsersByAccountIDs(ctx context.Context, accountIDs []string) (map[string]*schema.User, error)
	// GetUsersByEVMAddresses retrieves the known users among addresses keyed by lowercase EVM address
	GetUsersByEVMAddresses(ctx context.Context, evmAddresses []string) (map[string]*schema.User, error)
	// SetUserEVMAddress back-fills a user's EVM address if it is still empty
	SetUserEVMAddress(ctx context.Context, accountID, evmAddress string) error
}
