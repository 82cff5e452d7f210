package hedera

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sphera-world/market-engine/internal/adapter"
	"github.com/sphera-world/market-engine/internal/domain"
)

// usdPrecision is the number of decimal places kept when dividing cents by hbars
const usdPrecision = 10

// ContractLog is one log of a contract call as reported by the mirror node
type ContractLog struct {
	Address string   `json:"address"`
	Data    string   `json:"data"`
	Topics  []string `json:"topics"`
}

// ContractResult is the mirror node record of a contract call
type ContractResult struct {
	Result    string        `json:"result"`
	Status    string        `json:"status"`
	Timestamp string        `json:"timestamp"`
	Logs      []ContractLog `json:"logs"`
}

type exchangeRateResponse struct {
	CurrentRate struct {
		CentEquivalent int64 `json:"cent_equivalent"`
		HbarEquivalent int64 `json:"hbar_equivalent"`
	} `json:"current_rate"`
}

type accountNftsResponse struct {
	Nfts []map[string]interface{} `json:"nfts"`
}

type accountTokensResponse struct {
	Tokens []map[string]interface{} `json:"tokens"`
}

// Mirror reads ledger state from the REST mirror node
//
//go:generate mockgen -source=mirror.go -destination=../../mocks/hedera_mirror.go -package=mocks -mock_names=Mirror=MockMirror
type Mirror interface {
	// GetExchangeRate returns the USD price of one HBAR
	GetExchangeRate(ctx context.Context) (decimal.Decimal, error)

	// HasNftAllowance reports whether spender is approved for the owner's NFT
	HasNftAllowance(ctx context.Context, ownerID, spenderID, tokenID, serialNumber string) (bool, error)

	// IsTokenAssociated reports whether the account is associated with the token
	IsTokenAssociated(ctx context.Context, accountID, tokenID string) (bool, error)

	// GetContractResult returns the contract call record of a transaction
	GetContractResult(ctx context.Context, transactionID domain.TransactionID) (*ContractResult, error)
}

type mirrorClient struct {
	baseURL    string
	httpClient adapter.HTTPClient
}

// NewMirror creates a mirror node client rooted at baseURL (e.g. https://testnet.mirrornode.hedera.com/api/v1)
func NewMirror(baseURL string, httpClient adapter.HTTPClient) Mirror {
	return &mirrorClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetExchangeRate returns the USD price of one HBAR
func (m *mirrorClient) GetExchangeRate(ctx context.Context) (decimal.Decimal, error) {
	var resp exchangeRateResponse
	if err := m.httpClient.Get(ctx, m.baseURL+"/network/exchangerate", &resp); err != nil {
		return decimal.Zero, domain.Transient(fmt.Errorf("failed to get exchange rate: %w", err))
	}
	if resp.CurrentRate.HbarEquivalent == 0 {
		return decimal.Zero, domain.Transient(errors.New("exchange rate has zero hbar equivalent"))
	}

	cents := decimal.NewFromInt(resp.CurrentRate.CentEquivalent).
		DivRound(decimal.NewFromInt(resp.CurrentRate.HbarEquivalent), usdPrecision)
	return cents.Div(decimal.NewFromInt(100)), nil
}

// HasNftAllowance reports whether spender is approved for the owner's NFT
func (m *mirrorClient) HasNftAllowance(ctx context.Context, ownerID, spenderID, tokenID, serialNumber string) (bool, error) {
	query := url.Values{}
	query.Set("spender.id", spenderID)
	query.Set("token.id", tokenID)
	query.Set("serialnumber", serialNumber)

	var resp accountNftsResponse
	endpoint := fmt.Sprintf("%s/accounts/%s/nfts?%s", m.baseURL, url.PathEscape(ownerID), query.Encode())
	if err := m.httpClient.Get(ctx, endpoint, &resp); err != nil {
		if adapter.IsNotFound(err) {
			return false, nil
		}
		return false, domain.Transient(fmt.Errorf("failed to get nft allowance: %w", err))
	}
	return len(resp.Nfts) > 0, nil
}

// IsTokenAssociated reports whether the account is associated with the token
func (m *mirrorClient) IsTokenAssociated(ctx context.Context, accountID, tokenID string) (bool, error) {
	query := url.Values{}
	query.Set("token.id", tokenID)

	var resp accountTokensResponse
	endpoint := fmt.Sprintf("%s/accounts/%s/tokens?%s", m.baseURL, url.PathEscape(accountID), query.Encode())
	if err := m.httpClient.Get(ctx, endpoint, &resp); err != nil {
		if adapter.IsNotFound(err) {
			return false, nil
		}
		return false, domain.Transient(fmt.Errorf("failed to get token association: %w", err))
	}
	return len(resp.Tokens) > 0, nil
}

// GetContractResult returns the contract call record of a transaction
func (m *mirrorClient) GetContractResult(ctx context.Context, transactionID domain.TransactionID) (*ContractResult, error) {
	var result ContractResult
	endpoint := fmt.Sprintf("%s/contracts/results/%s", m.baseURL, transactionID.MirrorFormat())
	if err := m.httpClient.Get(ctx, endpoint, &result); err != nil {
		if adapter.IsNotFound(err) {
			return nil, fmt.Errorf("%w: no contract result for transaction %s", domain.ErrNotFound, transactionID.String())
		}
		return nil, domain.Transient(fmt.Errorf("failed to get contract result: %w", err))
	}
	return &result, nil
}
