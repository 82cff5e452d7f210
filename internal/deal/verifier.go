package deal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/listing"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/metrics"
	"github.com/sphera-world/market-engine/internal/providers/hedera"
	"github.com/sphera-world/market-engine/internal/store"
	"github.com/sphera-world/market-engine/internal/store/schema"
)

// Verifier checks a claimed bid acceptance against the ledger and records the deal
//
//go:generate mockgen -source=verifier.go -destination=../mocks/deal_verifier.go -package=mocks -mock_names=Verifier=MockDealVerifier
type Verifier interface {
	// Verify records the deal described by claim once the ledger confirms it.
	// A claim whose transaction was already recorded returns domain.ErrAlreadyProcessed.
	Verify(ctx context.Context, claim domain.VerifyDealJob) (*schema.NftMarketDeal, error)
}

type verifier struct {
	store    store.Store
	mirror   hedera.Mirror
	accounts listing.AccountResolver
}

// NewVerifier creates a deal verifier
func NewVerifier(st store.Store, mirror hedera.Mirror, accounts listing.AccountResolver) Verifier {
	return &verifier{
		store:    st,
		mirror:   mirror,
		accounts: accounts,
	}
}

// Verify records the deal described by claim once the ledger confirms it
func (v *verifier) Verify(ctx context.Context, claim domain.VerifyDealJob) (*schema.NftMarketDeal, error) {
	deal, err := v.verify(ctx, claim)
	metrics.DealVerifications.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		logger.WarnCtx(ctx, "Deal verification failed",
			zap.String("transactionId", claim.TransactionID),
			zap.Bool("retryable", domain.Retryable(err)),
			zap.Error(err))
		return nil, err
	}

	logger.InfoCtx(ctx, "Deal recorded",
		zap.String("transactionId", deal.TransactionID),
		zap.String("tokenId", claim.TokenID),
		zap.String("serialNumber", claim.SerialNumber),
		zap.String("price", deal.Price))
	return deal, nil
}

func (v *verifier) verify(ctx context.Context, claim domain.VerifyDealJob) (*schema.NftMarketDeal, error) {
	if err := claim.Validate(); err != nil {
		return nil, err
	}
	txID, err := domain.ParseTransactionID(claim.TransactionID)
	if err != nil {
		return nil, err
	}
	token, err := domain.ParseEntityID(claim.TokenID)
	if err != nil {
		return nil, err
	}
	price, err := domain.ParseAmount(claim.Price)
	if err != nil {
		return nil, err
	}
	serial, err := domain.ParseAmount(claim.SerialNumber)
	if err != nil {
		return nil, err
	}

	// 1. Parties
	buyerAddress, err := v.resolve(ctx, claim.BuyerAccountID)
	if err != nil {
		return nil, err
	}
	ownerAddress, err := v.resolve(ctx, claim.OwnerAccountID)
	if err != nil {
		return nil, err
	}

	// 2. NFT
	nft, err := v.store.GetNft(ctx, token.String(), serial.String())
	if err != nil {
		return nil, domain.Transient(fmt.Errorf("failed to get nft: %w", err))
	}
	if nft == nil {
		return nil, domain.ErrNftNotFound
	}

	// 3. Replay
	existing, err := v.store.GetDealByTransactionID(ctx, txID.String())
	if err != nil {
		return nil, domain.Transient(fmt.Errorf("failed to get deal: %w", err))
	}
	if existing != nil {
		return nil, domain.ErrAlreadyProcessed
	}

	// 4. Ledger record
	result, err := v.mirror.GetContractResult(ctx, txID)
	if err != nil {
		// The mirror lags consensus; a record it does not have yet may still arrive.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Transient(fmt.Errorf("transaction %s has no contract result yet", txID.String()))
		}
		return nil, err
	}
	event := firstAcceptBid(result.Logs)
	if event == nil {
		return nil, domain.ErrNotABidAcceptTransaction
	}

	// 5. Claim against event
	if err := matchEvent(event, ownerAddress, buyerAddress, price.String(), token, serial.String()); err != nil {
		return nil, err
	}

	// 6. Persist
	return v.store.RecordDeal(ctx, store.RecordDealInput{
		NftID:              nft.ID,
		OwnerAccountID:     claim.OwnerAccountID,
		BuyerAccountID:     claim.BuyerAccountID,
		Price:              price.String(),
		TransactionID:      txID.String(),
		ConsensusTimestamp: txID.ConsensusTimestamp(),
	})
}

// resolve maps an account to its EVM address; only transient failures stay retryable
func (v *verifier) resolve(ctx context.Context, accountID string) (string, error) {
	address, err := v.accounts.ResolveEVMAddress(ctx, accountID)
	if err != nil {
		if domain.Retryable(err) {
			return "", err
		}
		return "", fmt.Errorf("%w: %s: %v", domain.ErrAccountNotResolved, accountID, err)
	}
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: %s", domain.ErrAccountNotResolved, accountID)
	}
	return address, nil
}

// firstAcceptBid returns the first log that decodes as AcceptBid
func firstAcceptBid(logs []hedera.ContractLog) *domain.AcceptBidEvent {
	for _, l := range logs {
		event, err := hedera.DecodeAcceptBid(l)
		if err == nil {
			return event
		}
	}
	return nil
}

// matchEvent compares owner, buyer, amount, token and serial, stopping at the first difference
func matchEvent(event *domain.AcceptBidEvent, owner, buyer, price string, token domain.EntityID, serial string) error {
	switch {
	case !strings.EqualFold(event.Owner.Hex(), owner):
		return fmt.Errorf("%w: owner %s, claimed %s", domain.ErrEventMismatch, event.Owner.Hex(), owner)
	case !strings.EqualFold(event.Buyer.Hex(), buyer):
		return fmt.Errorf("%w: buyer %s, claimed %s", domain.ErrEventMismatch, event.Buyer.Hex(), buyer)
	case event.AcceptedBidAmount == nil || event.AcceptedBidAmount.String() != price:
		return fmt.Errorf("%w: amount %v, claimed %s", domain.ErrEventMismatch, event.AcceptedBidAmount, price)
	case event.Token != token.SolidityAddress():
		return fmt.Errorf("%w: token %s, claimed %s", domain.ErrEventMismatch, event.Token.Hex(), token.SolidityAddress().Hex())
	case event.SerialNumber == nil || event.SerialNumber.String() != serial:
		return fmt.Errorf("%w: serial %v, claimed %s", domain.ErrEventMismatch, event.SerialNumber, serial)
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case domain.Retryable(err):
		return metrics.OutcomeFailed
	default:
		return metrics.OutcomeRejected
	}
}
