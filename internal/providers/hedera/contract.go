package hedera

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/adapter"
	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/logger"
)

const (
	// DefaultGasLimit is the gas attached to marketplace contract calls
	DefaultGasLimit uint64 = 1_000_000

	// DefaultReceiptTimeout bounds the wait for a submitted transaction's receipt
	DefaultReceiptTimeout = 30 * time.Second
)

// ErrReadOnlyContract is returned when a state-changing call is made without an operator key
var ErrReadOnlyContract = errors.New("contract client has no operator key")

// Contract is the marketplace smart contract as seen through the JSON-RPC relay
//
//go:generate mockgen -source=contract.go -destination=../../mocks/hedera_contract.go -package=mocks -mock_names=Contract=MockContract
type Contract interface {
	// GetBid returns the buyer's bid for the NFT; an empty bid has a zero amount
	GetBid(ctx context.Context, tokenID domain.EntityID, serialNumber *big.Int, buyer common.Address) (domain.Bid, error)

	// GetBidsForToken returns one contract page of bids for the NFT
	GetBidsForToken(ctx context.Context, tokenID domain.EntityID, serialNumber *big.Int, page, pageSize int) ([]domain.Bid, error)

	// GetReceivedBids returns one contract page of bids on NFTs owned by account
	GetReceivedBids(ctx context.Context, account common.Address, page, pageSize int) ([]domain.Bid, error)

	// GetSentBids returns one contract page of bids placed by account
	GetSentBids(ctx context.Context, account common.Address, page, pageSize int) ([]domain.Bid, error)

	// GetItemInfo returns the contract's listing entry for the NFT
	GetItemInfo(ctx context.Context, tokenID domain.EntityID, serialNumber *big.Int) (*domain.MarketItemInfo, error)

	// CallUnlist unlists the NFT on the contract and waits for the receipt
	CallUnlist(ctx context.Context, token common.Address, serialNumber *big.Int) error

	// CallDeleteBid deletes the buyer's bid on the contract and waits for the receipt
	CallDeleteBid(ctx context.Context, token common.Address, serialNumber *big.Int, buyer common.Address) error
}

// ContractConfig configures the marketplace contract client
type ContractConfig struct {
	// ContractID is the contract's ledger id (e.g. 0.0.4567)
	ContractID string
	// OperatorPrivateKey is the hex ECDSA key signing state-changing calls; empty means read-only
	OperatorPrivateKey string
	GasLimit           uint64
	ReceiptTimeout     time.Duration
}

type contractClient struct {
	address        common.Address
	client         adapter.EthClient
	key            *ecdsa.PrivateKey
	from           common.Address
	gasLimit       uint64
	receiptTimeout time.Duration

	// nonceMu serializes nonce allocation and submission for the operator account
	nonceMu  sync.Mutex
	nonce    uint64
	nonceSet bool
}

// NewContract creates a marketplace contract client
func NewContract(client adapter.EthClient, cfg ContractConfig) (Contract, error) {
	contractID, err := domain.ParseEntityID(cfg.ContractID)
	if err != nil {
		return nil, fmt.Errorf("invalid contract id: %w", err)
	}

	c := &contractClient{
		address:        contractID.SolidityAddress(),
		client:         client,
		gasLimit:       cfg.GasLimit,
		receiptTimeout: cfg.ReceiptTimeout,
	}
	if c.gasLimit == 0 {
		c.gasLimit = DefaultGasLimit
	}
	if c.receiptTimeout == 0 {
		c.receiptTimeout = DefaultReceiptTimeout
	}

	if cfg.OperatorPrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.OperatorPrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid operator private key: %w", err)
		}
		c.key = key
		c.from = crypto.PubkeyToAddress(key.PublicKey)
	}

	return c, nil
}

// call executes a read-only contract method and returns its unpacked outputs
func (c *contractClient) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	input, err := MarketABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	output, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: input}, nil)
	if err != nil {
		return nil, domain.Transient(fmt.Errorf("failed to call %s: %w", method, err))
	}

	values, err := MarketABI.Unpack(method, output)
	if err != nil {
		return nil, domain.Transient(fmt.Errorf("failed to unpack %s: %w", method, err))
	}
	if len(values) == 0 {
		return nil, domain.Transient(fmt.Errorf("%s returned no outputs", method))
	}
	return values, nil
}

// callBids executes a bid listing method
func (c *contractClient) callBids(ctx context.Context, method string, args ...interface{}) ([]domain.Bid, error) {
	values, err := c.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}

	tuples := *abi.ConvertType(values[0], new([]bidTuple)).(*[]bidTuple)
	bids := make([]domain.Bid, 0, len(tuples))
	for _, t := range tuples {
		bids = append(bids, t.toDomain())
	}
	return bids, nil
}

// GetBid returns the buyer's bid for the NFT
func (c *contractClient) GetBid(ctx context.Context, tokenID domain.EntityID, serialNumber *big.Int, buyer common.Address) (domain.Bid, error) {
	values, err := c.call(ctx, "getTokenBid", tokenID.SolidityAddress(), serialNumber, buyer)
	if err != nil {
		return domain.Bid{}, err
	}
	out := *abi.ConvertType(values[0], new(bidTuple)).(*bidTuple)
	return out.toDomain(), nil
}

// GetBidsForToken returns one contract page of bids for the NFT
func (c *contractClient) GetBidsForToken(ctx context.Context, tokenID domain.EntityID, serialNumber *big.Int, page, pageSize int) ([]domain.Bid, error) {
	return c.callBids(ctx, "getTokenBids", tokenID.SolidityAddress(), serialNumber, big.NewInt(int64(page)), big.NewInt(int64(pageSize)))
}

// GetReceivedBids returns one contract page of bids on NFTs owned by account
func (c *contractClient) GetReceivedBids(ctx context.Context, account common.Address, page, pageSize int) ([]domain.Bid, error) {
	return c.callBids(ctx, "getReceivedBids", account, big.NewInt(int64(page)), big.NewInt(int64(pageSize)))
}

// GetSentBids returns one contract page of bids placed by account
func (c *contractClient) GetSentBids(ctx context.Context, account common.Address, page, pageSize int) ([]domain.Bid, error) {
	return c.callBids(ctx, "getSentBids", account, big.NewInt(int64(page)), big.NewInt(int64(pageSize)))
}

// GetItemInfo returns the contract's listing entry for the NFT.
// The contract keys listings by "0x<token solidity address>/<serial>".
func (c *contractClient) GetItemInfo(ctx context.Context, tokenID domain.EntityID, serialNumber *big.Int) (*domain.MarketItemInfo, error) {
	key := fmt.Sprintf("%s/%s", tokenID.LongZeroEVMAddress(), serialNumber.String())

	values, err := c.call(ctx, "nfts", key)
	if err != nil {
		return nil, err
	}
	var out itemTuple
	if err := MarketABI.Methods["nfts"].Outputs.Copy(&out, values); err != nil {
		return nil, domain.Transient(fmt.Errorf("failed to copy nfts outputs: %w", err))
	}
	return &domain.MarketItemInfo{
		Owner:        strings.ToLower(out.Owner.Hex()),
		Price:        out.Price,
		Token:        strings.ToLower(out.Token.Hex()),
		SerialNumber: out.SerialNumber,
		IsListed:     out.IsListed,
	}, nil
}

// CallUnlist unlists the NFT on the contract
func (c *contractClient) CallUnlist(ctx context.Context, token common.Address, serialNumber *big.Int) error {
	return c.transact(ctx, "unlistNFT", token, serialNumber)
}

// CallDeleteBid deletes the buyer's bid on the contract
func (c *contractClient) CallDeleteBid(ctx context.Context, token common.Address, serialNumber *big.Int, buyer common.Address) error {
	return c.transact(ctx, "deleteBid", token, serialNumber, buyer)
}

// transact signs a contract call with the operator key, submits it and waits for the receipt.
// A reverted or status-0 transaction is a permanent ledger rejection.
func (c *contractClient) transact(ctx context.Context, method string, args ...interface{}) error {
	if c.key == nil {
		return ErrReadOnlyContract
	}

	input, err := MarketABI.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to pack %s: %w", method, err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return domain.Transient(fmt.Errorf("failed to get gas price: %w", err))
	}
	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		return domain.Transient(fmt.Errorf("failed to get chain id: %w", err))
	}

	signed, err := c.submit(ctx, method, input, gasPrice, chainID)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Contract transaction submitted",
		zap.String("method", method),
		zap.String("txHash", signed.Hash().Hex()))

	receipt, err := c.waitReceipt(ctx, signed.Hash())
	if err != nil {
		return domain.Transient(fmt.Errorf("failed to get receipt for %s: %w", method, err))
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: %s failed in transaction %s", domain.ErrLedgerRejection, method, signed.Hash().Hex())
	}
	return nil
}

// submit signs and sends the call with the operator's next nonce. The nonce is
// tracked locally so concurrent calls never share one; it is reseeded from the
// relay when the relay reports it as stale or when a send fails.
func (c *contractClient) submit(ctx context.Context, method string, input []byte, gasPrice, chainID *big.Int) (*types.Transaction, error) {
	c.nonceMu.Lock()
	defer c.nonceMu.Unlock()

	if !c.nonceSet {
		if err := c.syncNonce(ctx); err != nil {
			return nil, err
		}
	}

	signed, err := c.sign(method, input, gasPrice, chainID)
	if err != nil {
		return nil, err
	}
	err = c.client.SendTransaction(ctx, signed)
	if err != nil && isNonceTooLow(err) {
		logger.WarnCtx(ctx, "Operator nonce is stale, resyncing",
			zap.String("method", method),
			zap.Uint64("nonce", c.nonce))
		if err := c.syncNonce(ctx); err != nil {
			return nil, err
		}
		if signed, err = c.sign(method, input, gasPrice, chainID); err != nil {
			return nil, err
		}
		err = c.client.SendTransaction(ctx, signed)
	}
	if err != nil {
		if isRevert(err) {
			return nil, fmt.Errorf("%w: %s reverted: %v", domain.ErrLedgerRejection, method, err)
		}
		c.nonceSet = false
		return nil, domain.Transient(fmt.Errorf("failed to send %s: %w", method, err))
	}

	c.nonce++
	return signed, nil
}

// syncNonce reloads the operator's pending nonce from the relay; callers hold nonceMu
func (c *contractClient) syncNonce(ctx context.Context) error {
	nonce, err := c.client.PendingNonceAt(ctx, c.from)
	if err != nil {
		c.nonceSet = false
		return domain.Transient(fmt.Errorf("failed to get nonce: %w", err))
	}
	c.nonce = nonce
	c.nonceSet = true
	return nil
}

// sign builds the call transaction at the current nonce; callers hold nonceMu
func (c *contractClient) sign(method string, input []byte, gasPrice, chainID *big.Int) (*types.Transaction, error) {
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    c.nonce,
		To:       &c.address,
		Value:    big.NewInt(0),
		Gas:      c.gasLimit,
		GasPrice: gasPrice,
		Data:     input,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign %s: %w", method, err)
	}
	return signed, nil
}

// waitReceipt polls for the receipt until it exists or the receipt timeout elapses
func (c *contractClient) waitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt
	operation := func() error {
		r, err := c.client.TransactionReceipt(ctx, hash)
		if err != nil {
			if !errors.Is(err, ethereum.NotFound) {
				logger.WarnCtx(ctx, "Failed to fetch receipt, retrying", zap.Error(err), zap.String("txHash", hash.Hex()))
			}
			return err
		}
		receipt = r
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = c.receiptTimeout

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}
	return receipt, nil
}

func isRevert(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "revert")
}

func isNonceTooLow(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "nonce too low") || strings.Contains(msg, "nonce_too_low")
}
