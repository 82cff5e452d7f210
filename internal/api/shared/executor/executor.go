package executor

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/adapter"
	"github.com/sphera-world/market-engine/internal/aggregator"
	"github.com/sphera-world/market-engine/internal/api/shared/dto"
	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/jobs"
	"github.com/sphera-world/market-engine/internal/listing"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/ratelimit"
)

// Executor is the interface for the API executor.
// Every operation acting for a user takes the caller explicitly.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetAccountBalance returns the account balance in HBAR and USD
	GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error)

	// GetNFTs returns a page of NFTs; caller is nil for anonymous requests
	GetNFTs(ctx context.Context, caller *domain.Caller, q aggregator.NftQuery) (*dto.NftListResponse, error)

	// GetCollections returns a page of validated collections
	GetCollections(ctx context.Context, q aggregator.CollectionQuery) (*dto.CollectionListResponse, error)

	// GetActivities returns the sale history of an NFT
	GetActivities(ctx context.Context, tokenID, serialNumber string) (*dto.ActivitiesResponse, error)

	// GetTransactions returns a page of the account's transactions
	GetTransactions(ctx context.Context, accountID string, p domain.Pagination) (*dto.TransactionListResponse, error)

	// CheckNftAllowance reports whether the marketplace may transfer the owner's NFT
	CheckNftAllowance(ctx context.Context, ownerID, tokenID, serialNumber string) (*dto.AllowanceResponse, error)

	// CheckTokenAssociation reports whether the account is associated with the token
	CheckTokenAssociation(ctx context.Context, accountID, tokenID string) (*dto.AssociationResponse, error)

	// GetEVMAddress returns the account's EVM address
	GetEVMAddress(ctx context.Context, accountID string) (*dto.EvmAddressResponse, error)

	// GetBidsForToken returns a page of the bids on an NFT
	GetBidsForToken(ctx context.Context, tokenID, serialNumber string, p domain.Pagination) (*dto.BidListResponse, error)

	// GetAccountBids returns a page of the bids an account received or sent
	GetAccountBids(ctx context.Context, accountID string, direction aggregator.BidDirection, p domain.Pagination) (*dto.BidListResponse, error)

	// GetBid returns the account's bid on an NFT
	GetBid(ctx context.Context, tokenID, serialNumber, accountID string) (*dto.BidResponse, error)

	// GetMarketItemInfo reconciles the cache with the contract's listing and returns it
	GetMarketItemInfo(ctx context.Context, tokenID, serialNumber string) (*domain.MarketItemInfo, error)

	// GetPriceHistory returns the daily prices over the month containing timestamp (ms); zero means now
	GetPriceHistory(ctx context.Context, tokenID, serialNumber string, timestamp int64) (*dto.PriceHistoryResponse, error)

	// QueueDeal validates a deal claim and schedules its verification
	QueueDeal(ctx context.Context, caller domain.Caller, claim domain.VerifyDealJob) error

	// SetMarketItems lists or unlists the caller's NFTs
	SetMarketItems(ctx context.Context, caller domain.Caller, req dto.MarketItemsRequest) error
}

type executor struct {
	aggregator aggregator.Aggregator
	listing    listing.Manager
	queue      jobs.Queue
	limiter    ratelimit.Limiter
	clock      adapter.Clock
}

// NewExecutor creates the API executor
func NewExecutor(
	agg aggregator.Aggregator,
	listingManager listing.Manager,
	queue jobs.Queue,
	limiter ratelimit.Limiter,
	clock adapter.Clock,
) Executor {
	return &executor{
		aggregator: agg,
		listing:    listingManager,
		queue:      queue,
		limiter:    limiter,
		clock:      clock,
	}
}

func (e *executor) GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error) {
	return e.aggregator.GetAccountBalance(ctx, accountID)
}

func (e *executor) GetNFTs(ctx context.Context, caller *domain.Caller, q aggregator.NftQuery) (*dto.NftListResponse, error) {
	page, err := e.aggregator.GetNFTs(ctx, caller, q)
	if err != nil {
		return nil, err
	}
	return &dto.NftListResponse{Nfts: page.Items, IsLastPage: page.IsLastPage}, nil
}

func (e *executor) GetCollections(ctx context.Context, q aggregator.CollectionQuery) (*dto.CollectionListResponse, error) {
	page, err := e.aggregator.GetCollections(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.CollectionListResponse{Collections: page.Items, IsLastPage: page.IsLastPage}, nil
}

func (e *executor) GetActivities(ctx context.Context, tokenID, serialNumber string) (*dto.ActivitiesResponse, error) {
	activities, err := e.aggregator.GetActivities(ctx, tokenID, serialNumber)
	if err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return &dto.ActivitiesResponse{History: activities}, nil
}

func (e *executor) GetTransactions(ctx context.Context, accountID string, p domain.Pagination) (*dto.TransactionListResponse, error) {
	page, err := e.aggregator.GetTransactions(ctx, accountID, p)
	if err != nil {
		return nil, err
	}
	return &dto.TransactionListResponse{Transactions: page.Items, IsLastPage: page.IsLastPage}, nil
}

func (e *executor) CheckNftAllowance(ctx context.Context, ownerID, tokenID, serialNumber string) (*dto.AllowanceResponse, error) {
	ok, err := e.aggregator.CheckNftAllowance(ctx, ownerID, tokenID, serialNumber)
	if err != nil {
		return nil, err
	}
	return &dto.AllowanceResponse{HasAllowance: ok}, nil
}

func (e *executor) CheckTokenAssociation(ctx context.Context, accountID, tokenID string) (*dto.AssociationResponse, error) {
	ok, err := e.aggregator.CheckTokenAssociation(ctx, accountID, tokenID)
	if err != nil {
		return nil, err
	}
	return &dto.AssociationResponse{IsAssociated: ok}, nil
}

func (e *executor) GetEVMAddress(ctx context.Context, accountID string) (*dto.EvmAddressResponse, error) {
	address, err := e.aggregator.ResolveEVMAddress(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &dto.EvmAddressResponse{EvmAddress: address}, nil
}

func (e *executor) GetBidsForToken(ctx context.Context, tokenID, serialNumber string, p domain.Pagination) (*dto.BidListResponse, error) {
	page, err := e.aggregator.GetBidsForToken(ctx, tokenID, serialNumber, p)
	if err != nil {
		return nil, err
	}
	return &dto.BidListResponse{Bids: page.Items, IsLastPage: page.IsLastPage}, nil
}

func (e *executor) GetAccountBids(ctx context.Context, accountID string, direction aggregator.BidDirection, p domain.Pagination) (*dto.BidListResponse, error) {
	page, err := e.aggregator.GetAccountBids(ctx, accountID, direction, p)
	if err != nil {
		return nil, err
	}
	return &dto.BidListResponse{Bids: page.Items, IsLastPage: page.IsLastPage}, nil
}

func (e *executor) GetBid(ctx context.Context, tokenID, serialNumber, accountID string) (*dto.BidResponse, error) {
	bid, err := e.aggregator.GetBid(ctx, tokenID, serialNumber, accountID)
	if err != nil {
		return nil, err
	}
	return &dto.BidResponse{Bid: bid}, nil
}

func (e *executor) GetMarketItemInfo(ctx context.Context, tokenID, serialNumber string) (*domain.MarketItemInfo, error) {
	return e.listing.Reconcile(ctx, tokenID, serialNumber)
}

func (e *executor) GetPriceHistory(ctx context.Context, tokenID, serialNumber string, timestamp int64) (*dto.PriceHistoryResponse, error) {
	if timestamp == 0 {
		timestamp = e.clock.Now().UnixMilli()
	}
	chunks, err := e.aggregator.GetPriceHistory(ctx, tokenID, serialNumber, timestamp)
	if err != nil {
		return nil, err
	}
	if chunks == nil {
		chunks = []domain.PriceHistoryChunk{}
	}
	return &dto.PriceHistoryResponse{History: chunks}, nil
}

// QueueDeal validates the claim, gates the caller on accept_bid and enqueues the verification
func (e *executor) QueueDeal(ctx context.Context, caller domain.Caller, claim domain.VerifyDealJob) error {
	if err := claim.Validate(); err != nil {
		return err
	}

	userKey := callerKey(caller)
	acquired, err := e.limiter.Acquire(ctx, ratelimit.ActionAcceptBid, userKey)
	if err != nil {
		return fmt.Errorf("failed to check rate limit: %w", err)
	}
	if !acquired {
		logger.InfoCtx(ctx, "Deal claim rate limited", zap.String("user", userKey))
		return domain.ErrRateLimited
	}

	jobID, err := e.queue.Enqueue(ctx, domain.NewVerifyDealJob(claim), 0)
	if err != nil {
		// The claim was not queued, so it must not count against the buyer
		if relErr := e.limiter.Release(ctx, ratelimit.ActionAcceptBid, userKey); relErr != nil {
			logger.WarnCtx(ctx, "Failed to release accept bid gate", zap.String("user", userKey), zap.Error(relErr))
		}
		return fmt.Errorf("failed to enqueue deal verification: %w", err)
	}

	logger.InfoCtx(ctx, "Deal verification queued",
		zap.String("jobId", jobID),
		zap.String("transactionId", claim.TransactionID),
		zap.String("user", userKey))
	return nil
}

// SetMarketItems lists or unlists every requested NFT in order
func (e *executor) SetMarketItems(ctx context.Context, caller domain.Caller, req dto.MarketItemsRequest) error {
	if req.IsListed {
		if _, err := domain.ParseAmount(req.DesiredPrice()); err != nil {
			return err
		}
	}
	return e.listing.SetListings(ctx, caller, req.Items(), req.IsListed, req.DesiredPrice(), req.End())
}

// callerKey identifies the caller for rate limiting, preferring the user id
func callerKey(caller domain.Caller) string {
	if caller.UserID != 0 {
		return strconv.FormatInt(caller.UserID, 10)
	}
	return caller.AccountID
}
