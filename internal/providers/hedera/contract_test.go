package hedera_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/mocks"
	"github.com/sphera-world/market-engine/internal/providers/hedera"
)

const testOperatorKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

type bidOutput struct {
	Owner        common.Address
	Amount       *big.Int
	Token        common.Address
	SerialNumber *big.Int
}

func newTestContract(t *testing.T, client *mocks.MockEthClient, key string) hedera.Contract {
	t.Helper()
	contract, err := hedera.NewContract(client, hedera.ContractConfig{
		ContractID:         "0.0.4567",
		OperatorPrivateKey: key,
	})
	require.NoError(t, err)
	return contract
}

func TestNewContract_InvalidConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := hedera.NewContract(mocks.NewMockEthClient(ctrl), hedera.ContractConfig{ContractID: "4567"})
	assert.Error(t, err)

	_, err = hedera.NewContract(mocks.NewMockEthClient(ctrl), hedera.ContractConfig{ContractID: "0.0.4567", OperatorPrivateKey: "not-hex"})
	assert.Error(t, err)
}

func TestContract_GetBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	contract := newTestContract(t, client, "")
	ctx := context.Background()

	output, err := hedera.MarketABI.Methods["getTokenBid"].Outputs.Pack(bidOutput{
		Owner:        testBuyer,
		Amount:       big.NewInt(500),
		Token:        testToken,
		SerialNumber: big.NewInt(1),
	})
	require.NoError(t, err)

	contractAddress := domain.EntityID{Num: 4567}.SolidityAddress()
	client.EXPECT().
		CallContract(ctx, gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			require.NotNil(t, msg.To)
			assert.Equal(t, contractAddress, *msg.To)

			method, err := hedera.MarketABI.MethodById(msg.Data[:4])
			require.NoError(t, err)
			assert.Equal(t, "getTokenBid", method.Name)

			args, err := method.Inputs.Unpack(msg.Data[4:])
			require.NoError(t, err)
			assert.Equal(t, testToken, args[0])
			assert.Equal(t, int64(1), args[1].(*big.Int).Int64())
			assert.Equal(t, testBuyer, args[2])
			return output, nil
		})

	bid, err := contract.GetBid(ctx, domain.EntityID{Num: 100}, big.NewInt(1), testBuyer)
	require.NoError(t, err)
	assert.Equal(t, testBuyer, bid.Owner)
	assert.Equal(t, int64(500), bid.Amount.Int64())
	assert.Equal(t, testToken, bid.Token)
	assert.True(t, bid.Active())
}

func TestContract_GetBidsForToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	contract := newTestContract(t, client, "")
	ctx := context.Background()

	output, err := hedera.MarketABI.Methods["getTokenBids"].Outputs.Pack([]bidOutput{
		{Owner: testBuyer, Amount: big.NewInt(500), Token: testToken, SerialNumber: big.NewInt(1)},
		{Owner: testOwner, Amount: big.NewInt(0), Token: testToken, SerialNumber: big.NewInt(1)},
	})
	require.NoError(t, err)

	client.EXPECT().CallContract(ctx, gomock.Any(), nil).Return(output, nil)

	bids, err := contract.GetBidsForToken(ctx, domain.EntityID{Num: 100}, big.NewInt(1), 1, 10)
	require.NoError(t, err)
	require.Len(t, bids, 2)
	assert.True(t, bids[0].Active())
	assert.False(t, bids[1].Active())
	assert.Equal(t, testOwner, bids[1].Owner)
}

func TestContract_GetSentBids_CallFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	contract := newTestContract(t, client, "")
	ctx := context.Background()

	client.EXPECT().CallContract(ctx, gomock.Any(), nil).Return(nil, errors.New("connection refused"))

	bids, err := contract.GetSentBids(ctx, testBuyer, 1, 10)
	assert.Nil(t, bids)
	assert.ErrorIs(t, err, domain.ErrTransient)
}

func TestContract_GetReceivedBids_EmptyOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	contract := newTestContract(t, client, "")
	ctx := context.Background()

	client.EXPECT().CallContract(ctx, gomock.Any(), nil).Return([]byte{}, nil)

	_, err := contract.GetReceivedBids(ctx, testOwner, 1, 10)
	assert.ErrorIs(t, err, domain.ErrTransient)
}

func TestContract_GetItemInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	contract := newTestContract(t, client, "")
	ctx := context.Background()

	output, err := hedera.MarketABI.Methods["nfts"].Outputs.Pack(testOwner, big.NewInt(5000), testToken, big.NewInt(3), true)
	require.NoError(t, err)

	client.EXPECT().
		CallContract(ctx, gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			args, err := hedera.MarketABI.Methods["nfts"].Inputs.Unpack(msg.Data[4:])
			require.NoError(t, err)
			assert.Equal(t, "0x0000000000000000000000000000000000000064/3", args[0])
			return output, nil
		})

	info, err := contract.GetItemInfo(ctx, domain.EntityID{Num: 100}, big.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, "0x00000000000000000000000000000000000001f4", info.Owner)
	assert.Equal(t, "0x0000000000000000000000000000000000000064", info.Token)
	assert.Equal(t, int64(5000), info.Price.Int64())
	assert.Equal(t, int64(3), info.SerialNumber.Int64())
	assert.True(t, info.IsListed)
	assert.Nil(t, info.ListingEndTimestamp)
}

func TestContract_CallUnlist(t *testing.T) {
	tests := []struct {
		name        string
		sendErr     error
		status      uint64
		expectedErr error
	}{
		{
			name:   "receipt success",
			status: types.ReceiptStatusSuccessful,
		},
		{
			name:        "receipt failed",
			status:      types.ReceiptStatusFailed,
			expectedErr: domain.ErrLedgerRejection,
		},
		{
			name:        "execution reverted",
			sendErr:     errors.New("execution reverted: not listed"),
			expectedErr: domain.ErrLedgerRejection,
		},
		{
			name:        "relay unavailable",
			sendErr:     errors.New("502 bad gateway"),
			expectedErr: domain.ErrTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockEthClient(ctrl)
			contract := newTestContract(t, client, testOperatorKey)
			ctx := context.Background()

			client.EXPECT().PendingNonceAt(ctx, gomock.Any()).Return(uint64(7), nil)
			client.EXPECT().SuggestGasPrice(ctx).Return(big.NewInt(1_000_000_000), nil)
			client.EXPECT().ChainID(ctx).Return(big.NewInt(296), nil)
			client.EXPECT().
				SendTransaction(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
					assert.Equal(t, uint64(7), tx.Nonce())
					assert.Equal(t, hedera.DefaultGasLimit, tx.Gas())
					method, err := hedera.MarketABI.MethodById(tx.Data()[:4])
					require.NoError(t, err)
					assert.Equal(t, "unlistNFT", method.Name)
					return tt.sendErr
				})
			if tt.sendErr == nil {
				client.EXPECT().
					TransactionReceipt(ctx, gomock.Any()).
					Return(&types.Receipt{Status: tt.status}, nil)
			}

			err := contract.CallUnlist(ctx, testToken, big.NewInt(1))
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

// nonceRelay accepts each operator nonce once, in order, like the JSON-RPC relay
type nonceRelay struct {
	mu   sync.Mutex
	next uint64
	used []uint64
}

func (r *nonceRelay) pendingNonceAt(context.Context, common.Address) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next, nil
}

func (r *nonceRelay) sendTransaction(_ context.Context, tx *types.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tx.Nonce() < r.next {
		return errors.New("nonce too low")
	}
	r.used = append(r.used, tx.Nonce())
	r.next = tx.Nonce() + 1
	return nil
}

func (r *nonceRelay) bump(n uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next += n
}

func expectRelay(client *mocks.MockEthClient, relay *nonceRelay) {
	client.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).DoAndReturn(relay.pendingNonceAt).AnyTimes()
	client.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil).AnyTimes()
	client.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(296), nil).AnyTimes()
	client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).DoAndReturn(relay.sendTransaction).AnyTimes()
	client.EXPECT().
		TransactionReceipt(gomock.Any(), gomock.Any()).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil).
		AnyTimes()
}

func TestContract_CallUnlist_ConcurrentNonces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	relay := &nonceRelay{next: 7}
	expectRelay(client, relay)
	contract := newTestContract(t, client, testOperatorKey)

	const calls = 5
	errs := make([]error, calls)
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = contract.CallUnlist(context.Background(), testToken, big.NewInt(int64(i+1)))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.ElementsMatch(t, []uint64{7, 8, 9, 10, 11}, relay.used)
}

func TestContract_CallUnlist_ResyncsStaleNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	relay := &nonceRelay{next: 7}
	expectRelay(client, relay)
	contract := newTestContract(t, client, testOperatorKey)
	ctx := context.Background()

	require.NoError(t, contract.CallUnlist(ctx, testToken, big.NewInt(1)))

	// another signer used the operator account in between
	relay.bump(3)

	require.NoError(t, contract.CallDeleteBid(ctx, testToken, big.NewInt(1), testBuyer))
	require.NoError(t, contract.CallUnlist(ctx, testToken, big.NewInt(2)))
	assert.Equal(t, []uint64{7, 11, 12}, relay.used)
}

func TestContract_CallUnlist_ReseedsAfterSendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	ctx := context.Background()
	client.EXPECT().SuggestGasPrice(ctx).Return(big.NewInt(1_000_000_000), nil).Times(2)
	client.EXPECT().ChainID(ctx).Return(big.NewInt(296), nil).Times(2)
	client.EXPECT().PendingNonceAt(ctx, gomock.Any()).Return(uint64(7), nil).Times(2)
	gomock.InOrder(
		client.EXPECT().SendTransaction(ctx, gomock.Any()).Return(errors.New("502 bad gateway")),
		client.EXPECT().
			SendTransaction(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
				assert.Equal(t, uint64(7), tx.Nonce())
				return nil
			}),
	)
	client.EXPECT().TransactionReceipt(ctx, gomock.Any()).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
	contract := newTestContract(t, client, testOperatorKey)

	err := contract.CallUnlist(ctx, testToken, big.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrTransient)
	assert.NoError(t, contract.CallUnlist(ctx, testToken, big.NewInt(1)))
}

func TestContract_CallDeleteBid_ReadOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contract := newTestContract(t, mocks.NewMockEthClient(ctrl), "")

	err := contract.CallDeleteBid(context.Background(), testToken, big.NewInt(1), testBuyer)
	assert.ErrorIs(t, err, hedera.ErrReadOnlyContract)
}
