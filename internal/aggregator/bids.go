package aggregator

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/store/schema"
)

// GetBidsForToken returns a page of the bids on an NFT.
// The contract pages bids itself, so a short page is the last one.
func (a *aggregator) GetBidsForToken(ctx context.Context, tokenID, serialNumber string, p domain.Pagination) (domain.Page[domain.BidView], error) {
	token, serial, err := parseNft(tokenID, serialNumber)
	if err != nil {
		return domain.Page[domain.BidView]{}, err
	}
	p = p.Normalize("")

	bids, err := a.contract.GetBidsForToken(ctx, token, serial, p.Page, p.PageSize)
	if err != nil {
		return domain.Page[domain.BidView]{}, fmt.Errorf("failed to get token bids: %w", err)
	}
	return a.bidPage(ctx, bids, p)
}

// GetAccountBids returns a page of the bids a registered account received or sent
func (a *aggregator) GetAccountBids(ctx context.Context, accountID string, direction BidDirection, p domain.Pagination) (domain.Page[domain.BidView], error) {
	entity, err := domain.ParseEntityID(accountID)
	if err != nil {
		return domain.Page[domain.BidView]{}, err
	}
	p = p.Normalize("")

	user, err := a.store.GetUserByAccountID(ctx, entity.String())
	if err != nil {
		return domain.Page[domain.BidView]{}, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return domain.Page[domain.BidView]{}, domain.ErrUserNotRegistered
	}

	evmAddress := deref(user.EvmAddress)
	if evmAddress == "" {
		if evmAddress, err = a.ResolveEVMAddress(ctx, entity.String()); err != nil {
			return domain.Page[domain.BidView]{}, err
		}
	}
	account := common.HexToAddress(evmAddress)

	var bids []domain.Bid
	switch direction {
	case BidsReceived:
		bids, err = a.contract.GetReceivedBids(ctx, account, p.Page, p.PageSize)
	case BidsSent:
		bids, err = a.contract.GetSentBids(ctx, account, p.Page, p.PageSize)
	default:
		return domain.Page[domain.BidView]{}, domain.Validation("invalid bid direction %q", direction)
	}
	if err != nil {
		return domain.Page[domain.BidView]{}, fmt.Errorf("failed to get %s bids: %w", direction, err)
	}
	return a.bidPage(ctx, bids, p)
}

// GetBid returns the account's bid on an NFT
func (a *aggregator) GetBid(ctx context.Context, tokenID, serialNumber, accountID string) (*domain.BidView, error) {
	token, serial, err := parseNft(tokenID, serialNumber)
	if err != nil {
		return nil, err
	}

	evmAddress, err := a.ResolveEVMAddress(ctx, accountID)
	if err != nil {
		return nil, err
	}

	bid, err := a.contract.GetBid(ctx, token, serial, common.HexToAddress(evmAddress))
	if err != nil {
		return nil, fmt.Errorf("failed to get bid: %w", err)
	}

	views, err := a.bidViews(ctx, []domain.Bid{bid})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (a *aggregator) bidPage(ctx context.Context, bids []domain.Bid, p domain.Pagination) (domain.Page[domain.BidView], error) {
	views, err := a.bidViews(ctx, bids)
	if err != nil {
		return domain.Page[domain.BidView]{}, err
	}
	return domain.Page[domain.BidView]{
		Items:      views,
		IsLastPage: len(views) < p.PageSize,
	}, nil
}

// bidViews enriches contract bids with USD amounts, bidders and cached NFTs
func (a *aggregator) bidViews(ctx context.Context, bids []domain.Bid) ([]domain.BidView, error) {
	views := make([]domain.BidView, len(bids))
	if len(bids) == 0 {
		return views, nil
	}

	rate, err := a.mirror.GetExchangeRate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}

	addresses := make([]string, 0, len(bids))
	for _, bid := range bids {
		addresses = append(addresses, strings.ToLower(bid.Owner.Hex()))
	}
	bidders, err := a.store.GetUsersByEVMAddresses(ctx, addresses)
	if err != nil {
		return nil, fmt.Errorf("failed to get bidders: %w", err)
	}

	err = a.fanOut(ctx, len(bids), func(i int) error {
		view, err := a.bidView(ctx, bids[i], rate, bidders[addresses[i]])
		if err != nil {
			return err
		}
		views[i] = view
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (a *aggregator) bidView(ctx context.Context, bid domain.Bid, rate decimal.Decimal, bidder *schema.User) (domain.BidView, error) {
	amount := bid.Amount
	if amount == nil {
		amount = new(big.Int)
	}
	serial := bid.SerialNumber
	if serial == nil {
		serial = new(big.Int)
	}

	view := domain.BidView{
		Amount:          amount.String(),
		AmountInUsd:     toUsd(toHbar(decimal.NewFromBigInt(amount, 0)), rate),
		OwnerEvmAddress: strings.ToLower(bid.Owner.Hex()),
		TokenID:         strings.ToLower(bid.Token.Hex()),
		SerialNumber:    serial.String(),
		Active:          bid.Active(),
	}
	if bidder != nil {
		view.OwnerAccountID = bidder.AccountID
		view.Username = bidder.Username
	}

	token, err := domain.EntityIDFromSolidityAddress(bid.Token.Hex())
	if err != nil {
		return view, nil
	}
	nft, err := a.store.GetNft(ctx, token.String(), serial.String())
	if err != nil {
		return domain.BidView{}, fmt.Errorf("failed to get bid nft: %w", err)
	}
	if nft == nil {
		logger.DebugCtx(ctx, "Bid nft is not cached",
			zap.String("tokenId", token.String()),
			zap.String("serialNumber", serial.String()))
		return view, nil
	}

	var owner *schema.User
	if nft.AccountID != nil {
		if owner, err = a.store.GetUserByAccountID(ctx, *nft.AccountID); err != nil {
			return domain.BidView{}, fmt.Errorf("failed to get nft owner: %w", err)
		}
	}
	nftView := cachedNftView(nil, nft, owner)
	view.Nft = &nftView
	return view, nil
}

// parseNft validates a token id and serial number
func parseNft(tokenID, serialNumber string) (domain.EntityID, *big.Int, error) {
	token, err := domain.ParseEntityID(tokenID)
	if err != nil {
		return domain.EntityID{}, nil, err
	}
	serial, err := domain.ParseAmount(serialNumber)
	if err != nil {
		return domain.EntityID{}, nil, domain.Validation("invalid serial number %q", serialNumber)
	}
	return token, serial, nil
}
