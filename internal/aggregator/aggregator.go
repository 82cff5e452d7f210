package aggregator

import (
	"context"
	"runtime"

	"github.com/alitto/pond/v2"

	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/metadata"
	"github.com/sphera-world/market-engine/internal/providers/hedera"
	"github.com/sphera-world/market-engine/internal/store"
)

// BidDirection selects the bids of an account
type BidDirection string

const (
	BidsReceived BidDirection = "received"
	BidsSent     BidDirection = "sent"
)

// NftQuery selects a page of NFTs
type NftQuery struct {
	Creator        string
	AccountID      string
	TokenID        string
	SerialNumber   string
	SearchQuery    string
	IsMarketListed bool
	Pagination     domain.Pagination
}

// CollectionQuery selects a page of collections
type CollectionQuery struct {
	AccountID  string
	TokenID    string
	Creator    string
	Pagination domain.Pagination
}

// Config configures the aggregator
type Config struct {
	// ContractID is the marketplace contract; it is the spender of NFT allowances
	ContractID string
	// TrashCollectorID is the account whose NFTs are hidden from indexer reads
	TrashCollectorID string
	// ValidatedCollections are the collections the marketplace exposes
	ValidatedCollections []domain.ValidatedCollection
	// Concurrency bounds the formatting fan-out; defaults to the number of CPUs
	Concurrency int
}

// Aggregator merges the indexer, the mirror node, the contract and the cache into client views
//
//go:generate mockgen -source=aggregator.go -destination=../mocks/aggregator.go -package=mocks -mock_names=Aggregator=MockAggregator
type Aggregator interface {
	// GetNFTs returns a page of NFTs from the cache (search or listed) or from the indexer
	GetNFTs(ctx context.Context, caller *domain.Caller, q NftQuery) (domain.Page[domain.NftView], error)

	// GetCollections returns a page of validated collections from the indexer
	GetCollections(ctx context.Context, q CollectionQuery) (domain.Page[domain.CollectionView], error)

	// GetTransactions returns a page of the account's transfers
	GetTransactions(ctx context.Context, accountID string, p domain.Pagination) (domain.Page[domain.TransactionView], error)

	// GetAccountBalance returns the account balance in HBAR and USD
	GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error)

	// ResolveEVMAddress returns the lowercase EVM address of an account
	ResolveEVMAddress(ctx context.Context, accountID string) (string, error)

	// GetBidsForToken returns a page of the bids on an NFT
	GetBidsForToken(ctx context.Context, tokenID, serialNumber string, p domain.Pagination) (domain.Page[domain.BidView], error)

	// GetAccountBids returns a page of the bids a registered account received or sent
	GetAccountBids(ctx context.Context, accountID string, direction BidDirection, p domain.Pagination) (domain.Page[domain.BidView], error)

	// GetBid returns the account's bid on an NFT
	GetBid(ctx context.Context, tokenID, serialNumber, accountID string) (*domain.BidView, error)

	// CheckNftAllowance reports whether the marketplace contract may transfer the owner's NFT
	CheckNftAllowance(ctx context.Context, ownerID, tokenID, serialNumber string) (bool, error)

	// CheckTokenAssociation reports whether the account is associated with the token
	CheckTokenAssociation(ctx context.Context, accountID, tokenID string) (bool, error)

	// GetActivities returns the latest sales of an NFT, newest first
	GetActivities(ctx context.Context, tokenID, serialNumber string) ([]domain.Activity, error)

	// GetPriceHistory returns the daily average sale price of an NFT over the UTC month containing timestamp (ms)
	GetPriceHistory(ctx context.Context, tokenID, serialNumber string, timestamp int64) ([]domain.PriceHistoryChunk, error)

	// EnsureValidatedCollections seeds the cache with the validated collections
	EnsureValidatedCollections(ctx context.Context) error

	// Close stops the formatting pool
	Close()
}

type aggregator struct {
	config   Config
	store    store.Store
	indexer  hedera.Indexer
	mirror   hedera.Mirror
	contract hedera.Contract
	resolver metadata.Resolver
	pool     pond.Pool
}

// NewAggregator creates an aggregator
func NewAggregator(
	cfg Config,
	st store.Store,
	indexer hedera.Indexer,
	mirror hedera.Mirror,
	contract hedera.Contract,
	resolver metadata.Resolver,
) Aggregator {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	return &aggregator{
		config:   cfg,
		store:    st,
		indexer:  indexer,
		mirror:   mirror,
		contract: contract,
		resolver: resolver,
		pool:     pond.NewPool(concurrency),
	}
}

// Close stops the formatting pool
func (a *aggregator) Close() {
	a.pool.StopAndWait()
}

// EnsureValidatedCollections seeds the cache with the validated collections
func (a *aggregator) EnsureValidatedCollections(ctx context.Context) error {
	return a.store.EnsureCollections(ctx, a.config.ValidatedCollections)
}

// validatedTokenIDs returns the validated collections, restricted to creator when set
func (a *aggregator) validatedTokenIDs(creator string) []string {
	var ids []string
	for _, c := range a.config.ValidatedCollections {
		if creator != "" && c.Creator != creator {
			continue
		}
		ids = append(ids, c.TokenID)
	}
	return ids
}

// fanOut runs fn for every index on the pool and waits for all of them
func (a *aggregator) fanOut(ctx context.Context, n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	group := a.pool.NewGroupContext(ctx)
	for i := 0; i < n; i++ {
		group.SubmitErr(func() error {
			return fn(i)
		})
	}
	return group.Wait()
}
