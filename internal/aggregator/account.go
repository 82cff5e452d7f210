package aggregator

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/metrics"
	"github.com/sphera-world/market-engine/internal/providers/hedera"
)

const defaultTransactionOrder = "consensus_timestamp"

// ResolveEVMAddress returns the account's EVM address from the user cache, the indexer,
// or the long-zero derivation, in that order
func (a *aggregator) ResolveEVMAddress(ctx context.Context, accountID string) (string, error) {
	entity, err := domain.ParseEntityID(accountID)
	if err != nil {
		return "", err
	}

	// 1. User cache
	user, err := a.store.GetUserByAccountID(ctx, entity.String())
	if err != nil {
		return "", domain.Transient(fmt.Errorf("failed to get user: %w", err))
	}
	if user != nil && user.EvmAddress != nil && *user.EvmAddress != "" {
		return strings.ToLower(*user.EvmAddress), nil
	}

	// 2. Indexer
	evmAddress, err := a.indexer.QueryAccountEVM(ctx, entity.String())
	if err != nil {
		return "", fmt.Errorf("failed to query account evm address: %w", err)
	}
	if evmAddress != "" {
		evmAddress = strings.ToLower(evmAddress)
		if user != nil {
			if err := a.store.SetUserEVMAddress(ctx, entity.String(), evmAddress); err != nil {
				logger.WarnCtx(ctx, "Failed to back-fill user evm address",
					zap.String("accountId", entity.String()),
					zap.Error(err))
			}
		}
		return evmAddress, nil
	}

	// 3. Long-zero derivation
	return entity.LongZeroEVMAddress(), nil
}

// GetAccountBalance returns the account balance in HBAR and USD
func (a *aggregator) GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error) {
	entity, err := domain.ParseEntityID(accountID)
	if err != nil {
		return nil, err
	}

	tinybars, err := a.indexer.QueryAccountBalance(ctx, entity.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query account balance: %w", err)
	}
	amount, err := decimal.NewFromString(tinybars)
	if err != nil {
		return nil, domain.Transient(fmt.Errorf("invalid balance %q: %w", tinybars, err))
	}

	rate, err := a.mirror.GetExchangeRate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}

	hbars := toHbar(amount)
	return &domain.AccountBalance{
		Balance:      hbars.String(),
		BalanceInUsd: toUsd(hbars, rate),
	}, nil
}

// GetTransactions returns a page of the account's transfers classified from the account's point of view
func (a *aggregator) GetTransactions(ctx context.Context, accountID string, p domain.Pagination) (domain.Page[domain.TransactionView], error) {
	entity, err := domain.ParseEntityID(accountID)
	if err != nil {
		return domain.Page[domain.TransactionView]{}, err
	}
	p = p.Normalize(defaultTransactionOrder)

	rows, err := a.indexer.QueryTransactions(ctx, hedera.TransactionQuery{
		AccountID: entity.String(),
		OrderBy:   p.OrderBy,
		Direction: p.Direction,
		Limit:     p.Limit(),
		Offset:    p.Offset(),
	})
	if err != nil {
		return domain.Page[domain.TransactionView]{}, fmt.Errorf("failed to query transactions: %w", err)
	}
	metrics.IndexerPages.WithLabelValues("transactions").Inc()

	views := make([]domain.TransactionView, 0, len(rows))
	for _, row := range rows {
		tx := row.Transaction
		views = append(views, domain.TransactionView{
			Amount: row.Amount,
			Transaction: domain.TransactionDetail{
				PayerAccountID:     domain.FormatIndexerID(tx.PayerAccountID),
				Result:             tx.Result,
				Type:               classifyTransaction(entity, tx.Transfers),
				ID:                 tx.ID,
				ChargedTxFee:       tx.ChargedTxFee,
				ConsensusTimestamp: domain.NanosToMillis(tx.ConsensusTimestamp.String()),
				Transfers:          tx.Transfers,
			},
		})
	}
	return domain.TrimPage(views, p.PageSize), nil
}

// classifyTransaction derives the transaction type from its last transfer
func classifyTransaction(account domain.EntityID, transfers []domain.Transfer) domain.TransactionType {
	if len(transfers) == 0 {
		return domain.TransactionTransferredHbar
	}
	last := transfers[len(transfers)-1]
	received := last.ReceiverAccountID == int64(account.Num)

	switch {
	case last.Nft == nil && received:
		return domain.TransactionReceivedHbar
	case last.Nft == nil:
		return domain.TransactionTransferredHbar
	case received:
		return domain.TransactionReceivedNFT
	default:
		return domain.TransactionTransferredNFT
	}
}

// CheckNftAllowance reports whether the marketplace contract may transfer the owner's NFT
func (a *aggregator) CheckNftAllowance(ctx context.Context, ownerID, tokenID, serialNumber string) (bool, error) {
	if _, err := domain.ParseEntityID(ownerID); err != nil {
		return false, err
	}
	if _, err := domain.ParseEntityID(tokenID); err != nil {
		return false, err
	}
	if _, err := domain.ParseAmount(serialNumber); err != nil {
		return false, domain.Validation("invalid serial number %q", serialNumber)
	}
	return a.mirror.HasNftAllowance(ctx, ownerID, a.config.ContractID, tokenID, serialNumber)
}

// CheckTokenAssociation reports whether the account is associated with the token
func (a *aggregator) CheckTokenAssociation(ctx context.Context, accountID, tokenID string) (bool, error) {
	if _, err := domain.ParseEntityID(accountID); err != nil {
		return false, err
	}
	if _, err := domain.ParseEntityID(tokenID); err != nil {
		return false, err
	}
	return a.mirror.IsTokenAssociated(ctx, accountID, tokenID)
}

// toHbar converts tinybars to HBAR
func toHbar(tinybars decimal.Decimal) decimal.Decimal {
	return tinybars.Shift(-domain.HbarDecimals)
}

// toUsd converts HBAR to a USD display amount
func toUsd(hbars, rate decimal.Decimal) string {
	return hbars.Mul(rate).StringFixed(domain.UsdDisplayPlaces)
}
