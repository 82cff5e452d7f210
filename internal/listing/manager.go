package listing

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/adapter"
	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/jobs"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/providers/hedera"
	"github.com/sphera-world/market-engine/internal/store"
	"github.com/sphera-world/market-engine/internal/store/schema"
)

// Item identifies one NFT of a batch listing request
type Item struct {
	TokenID      string `json:"tokenId"`
	SerialNumber string `json:"serialNumber"`
}

// AccountResolver resolves ledger accounts to EVM addresses
type AccountResolver interface {
	ResolveEVMAddress(ctx context.Context, accountID string) (string, error)
}

// Manager owns the listing lifecycle of NFTs: listing, unlisting, and expiry on the contract
//
//go:generate mockgen -source=manager.go -destination=../mocks/listing_manager.go -package=mocks -mock_names=Manager=MockListingManager,AccountResolver=MockAccountResolver
type Manager interface {
	// List lists the caller's NFT until end and schedules its expiry, replacing any earlier schedule
	List(ctx context.Context, caller domain.Caller, item Item, desiredPrice string, end time.Time) (*schema.NftMarketListing, error)

	// Unlist unlists the caller's NFT and cancels its expiry; unlisting an unlisted NFT is a no-op
	Unlist(ctx context.Context, caller domain.Caller, item Item) error

	// SetListings lists or unlists every item in order, stopping at the first failure
	SetListings(ctx context.Context, caller domain.Caller, items []Item, isListed bool, desiredPrice string, end *time.Time) error

	// HandleExpireListing unlists an expired listing on the contract and in the cache
	HandleExpireListing(ctx context.Context, job domain.ExpireListingJob) error

	// HandleDeleteBid deletes a bid on the contract
	HandleDeleteBid(ctx context.Context, job domain.DeleteBidJob) error

	// Reconcile copies the contract's listing state into the cache and returns the merged view
	Reconcile(ctx context.Context, tokenID, serialNumber string) (*domain.MarketItemInfo, error)
}

type manager struct {
	store    store.Store
	queue    jobs.Queue
	contract hedera.Contract
	accounts AccountResolver
	clock    adapter.Clock
}

// NewManager creates a listing manager
func NewManager(st store.Store, queue jobs.Queue, contract hedera.Contract, accounts AccountResolver, clock adapter.Clock) Manager {
	return &manager{
		store:    st,
		queue:    queue,
		contract: contract,
		accounts: accounts,
		clock:    clock,
	}
}

// List lists the caller's NFT until end
func (m *manager) List(ctx context.Context, caller domain.Caller, item Item, desiredPrice string, end time.Time) (*schema.NftMarketListing, error) {
	// 1. The schedule must lie in the future; nothing is scheduled otherwise
	delay := m.clock.Until(end)
	if delay <= 0 {
		return nil, domain.ErrInvalidSchedule
	}

	token, serial, err := parseItem(item)
	if err != nil {
		return nil, err
	}
	price, err := domain.ParseAmount(desiredPrice)
	if err != nil || price.Sign() == 0 {
		return nil, domain.Validation("invalid desired price %q", desiredPrice)
	}

	// 2. Fresh read right before mutating
	nft, err := m.ownedNft(ctx, caller, token, serial)
	if err != nil {
		return nil, err
	}

	// 3. Replace the previous schedule
	if nft.Listing != nil && nft.Listing.JobID != nil {
		m.cancel(ctx, *nft.Listing.JobID)
	}

	jobID, err := m.queue.Enqueue(ctx, domain.NewExpireListingJob(token, serial.String()), delay)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule listing expiry: %w", err)
	}

	// 4. Persist
	listed := true
	priceText := price.String()
	listing, err := m.store.UpdateListing(ctx, nft.ID, store.ListingUpdate{
		IsListed:            &listed,
		DesiredPrice:        &priceText,
		ListingEndTimestamp: &end,
		JobID:               &jobID,
	})
	if err != nil {
		m.cancel(ctx, jobID)
		return nil, fmt.Errorf("failed to save listing: %w", err)
	}

	logger.InfoCtx(ctx, "NFT listed",
		zap.String("tokenId", token.String()),
		zap.String("serialNumber", serial.String()),
		zap.String("price", priceText),
		zap.Time("end", end),
		zap.String("jobId", jobID))

	return listing, nil
}

// Unlist unlists the caller's NFT
func (m *manager) Unlist(ctx context.Context, caller domain.Caller, item Item) error {
	token, serial, err := parseItem(item)
	if err != nil {
		return err
	}

	nft, err := m.ownedNft(ctx, caller, token, serial)
	if err != nil {
		return err
	}
	if nft.Listing == nil || !nft.Listing.IsListed {
		return nil
	}

	if nft.Listing.JobID != nil {
		m.cancel(ctx, *nft.Listing.JobID)
	}

	listed := false
	if _, err := m.store.UpdateListing(ctx, nft.ID, store.ListingUpdate{IsListed: &listed}); err != nil {
		return fmt.Errorf("failed to save listing: %w", err)
	}

	logger.InfoCtx(ctx, "NFT unlisted",
		zap.String("tokenId", token.String()),
		zap.String("serialNumber", serial.String()))
	return nil
}

// SetListings lists or unlists every item in order
func (m *manager) SetListings(ctx context.Context, caller domain.Caller, items []Item, isListed bool, desiredPrice string, end *time.Time) error {
	if len(items) == 0 {
		return domain.Validation("no items to update")
	}
	if isListed && end == nil {
		return domain.ErrInvalidSchedule
	}

	for _, item := range items {
		var err error
		if isListed {
			_, err = m.List(ctx, caller, item, desiredPrice, *end)
		} else {
			err = m.Unlist(ctx, caller, item)
		}
		if err != nil {
			return fmt.Errorf("failed to update %s/%s: %w", item.TokenID, item.SerialNumber, err)
		}
	}
	return nil
}

// HandleExpireListing unlists an expired listing.
// A contract rejection is not retried; the cache is then reconciled with the contract instead.
func (m *manager) HandleExpireListing(ctx context.Context, job domain.ExpireListingJob) error {
	token, err := domain.EntityIDFromSolidityAddress(job.TokenAddress)
	if err != nil {
		return err
	}
	serial := job.Serial()
	if serial == nil {
		return domain.Validation("invalid serial number %q", job.SerialNumber)
	}

	if err := m.contract.CallUnlist(ctx, common.HexToAddress(job.TokenAddress), serial); err != nil {
		if errors.Is(err, domain.ErrLedgerRejection) {
			logger.WarnCtx(ctx, "Contract rejected listing expiry",
				zap.String("tokenId", token.String()),
				zap.String("serialNumber", serial.String()),
				zap.Error(err))
			if _, err := m.Reconcile(ctx, token.String(), serial.String()); err != nil {
				logger.WarnCtx(ctx, "Failed to reconcile rejected listing expiry", zap.Error(err))
			}
			return nil
		}
		return fmt.Errorf("failed to unlist on contract: %w", err)
	}

	nft, err := m.store.GetNft(ctx, token.String(), serial.String())
	if err != nil {
		return fmt.Errorf("failed to get nft: %w", err)
	}
	if nft == nil {
		return domain.ErrNftNotFound
	}

	listed := false
	if _, err := m.store.UpdateListing(ctx, nft.ID, store.ListingUpdate{IsListed: &listed}); err != nil {
		return fmt.Errorf("failed to save listing: %w", err)
	}

	logger.InfoCtx(ctx, "Listing expired",
		zap.String("tokenId", token.String()),
		zap.String("serialNumber", serial.String()))
	return nil
}

// HandleDeleteBid deletes a bid on the contract; the cache holds no bids
func (m *manager) HandleDeleteBid(ctx context.Context, job domain.DeleteBidJob) error {
	serial := job.Serial()
	if serial == nil {
		return domain.Validation("invalid serial number %q", job.SerialNumber)
	}

	err := m.contract.CallDeleteBid(ctx, common.HexToAddress(job.TokenAddress), serial, common.HexToAddress(job.BuyerAddress))
	if err != nil {
		if errors.Is(err, domain.ErrLedgerRejection) {
			logger.WarnCtx(ctx, "Contract rejected bid deletion",
				zap.String("token", job.TokenAddress),
				zap.String("serialNumber", job.SerialNumber),
				zap.String("buyer", job.BuyerAddress),
				zap.Error(err))
			return nil
		}
		return fmt.Errorf("failed to delete bid on contract: %w", err)
	}

	logger.InfoCtx(ctx, "Bid deleted",
		zap.String("token", job.TokenAddress),
		zap.String("serialNumber", job.SerialNumber),
		zap.String("buyer", job.BuyerAddress))
	return nil
}

// Reconcile copies the contract's listing state into the cache
func (m *manager) Reconcile(ctx context.Context, tokenID, serialNumber string) (*domain.MarketItemInfo, error) {
	token, serial, err := parseItem(Item{TokenID: tokenID, SerialNumber: serialNumber})
	if err != nil {
		return nil, err
	}

	// 1. Contract view
	info, err := m.contract.GetItemInfo(ctx, token, serial)
	if err != nil {
		return nil, fmt.Errorf("failed to get contract listing: %w", err)
	}

	nft, err := m.store.GetNft(ctx, token.String(), serial.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get nft: %w", err)
	}
	if nft == nil {
		return info, nil
	}

	// 2. A listing made by a previous owner is void
	if nft.AccountID != nil {
		ownerAddress, err := m.accounts.ResolveEVMAddress(ctx, *nft.AccountID)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to resolve cached owner",
				zap.String("accountId", *nft.AccountID),
				zap.Error(err))
		} else if !strings.EqualFold(ownerAddress, info.Owner) {
			info.Owner = ownerAddress
			info.Token = token.LongZeroEVMAddress()
			info.SerialNumber = new(big.Int).Set(serial)
			info.IsListed = false
		}
	}

	// 3. Copy into the cache, cancelling a schedule the contract no longer backs.
	// A cache that already agrees with the contract is left untouched.
	update := store.ListingUpdate{IsListed: &info.IsListed}
	if info.Price != nil {
		price := info.Price.String()
		update.DesiredPrice = &price
	}
	listing := nft.Listing
	if listingDiffers(listing, update) {
		if !info.IsListed && listing != nil && listing.JobID != nil {
			m.cancel(ctx, *listing.JobID)
			update.ClearJobID = true
		}

		listing, err = m.store.UpdateListing(ctx, nft.ID, update)
		if err != nil {
			return nil, fmt.Errorf("failed to save listing: %w", err)
		}
		logger.InfoCtx(ctx, "Listing reconciled with contract",
			zap.String("tokenId", token.String()),
			zap.String("serialNumber", serial.String()),
			zap.Bool("isListed", info.IsListed))
	}
	if listing != nil && listing.ListingEndTimestamp != nil {
		end := listing.ListingEndTimestamp.UnixMilli()
		info.ListingEndTimestamp = &end
	}
	return info, nil
}

// listingDiffers reports whether the cached listing disagrees with update
func listingDiffers(listing *schema.NftMarketListing, update store.ListingUpdate) bool {
	if listing == nil {
		return true
	}
	if listing.IsListed != *update.IsListed {
		return true
	}
	if !listing.IsListed && listing.JobID != nil {
		return true
	}
	switch {
	case listing.DesiredPrice == nil && update.DesiredPrice == nil:
		return false
	case listing.DesiredPrice == nil || update.DesiredPrice == nil:
		return true
	default:
		return *listing.DesiredPrice != *update.DesiredPrice
	}
}

// ownedNft loads the NFT and checks the caller owns it
func (m *manager) ownedNft(ctx context.Context, caller domain.Caller, token domain.EntityID, serial *big.Int) (*schema.Nft, error) {
	nft, err := m.store.GetNft(ctx, token.String(), serial.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get nft: %w", err)
	}
	if nft == nil {
		return nil, domain.ErrNftNotFound
	}
	if nft.AccountID == nil || *nft.AccountID != caller.AccountID {
		return nil, domain.ErrNotOwner
	}
	return nft, nil
}

// cancel cancels a job best-effort
func (m *manager) cancel(ctx context.Context, jobID string) {
	if err := m.queue.Cancel(ctx, jobID); err != nil {
		logger.WarnCtx(ctx, "Failed to cancel listing job", zap.String("jobId", jobID), zap.Error(err))
	}
}

func parseItem(item Item) (domain.EntityID, *big.Int, error) {
	token, err := domain.ParseEntityID(item.TokenID)
	if err != nil {
		return domain.EntityID{}, nil, err
	}
	serial, err := domain.ParseAmount(item.SerialNumber)
	if err != nil {
		return domain.EntityID{}, nil, domain.Validation("invalid serial number %q", item.SerialNumber)
	}
	return token, serial, nil
}
