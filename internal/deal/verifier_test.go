package deal_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphera-world/market-engine/internal/deal"
	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/mocks"
	"github.com/sphera-world/market-engine/internal/providers/hedera"
	"github.com/sphera-world/market-engine/internal/store"
	"github.com/sphera-world/market-engine/internal/store/schema"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const (
	ownerAccount = "0.0.7001"
	buyerAccount = "0.0.7002"
	txID         = "0.0.7002@1700000000.123456789"
)

var (
	ownerEVM = common.HexToAddress("0x0000000000000000000000000000000000001b59")
	buyerEVM = common.HexToAddress("0x0000000000000000000000000000000000001b5a")
	token    = domain.EntityID{Num: 100}.SolidityAddress()
)

type testVerifier struct {
	store    *mocks.MockStore
	mirror   *mocks.MockMirror
	accounts *mocks.MockAccountResolver
	verifier deal.Verifier
}

func setupTestVerifier(t *testing.T) *testVerifier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tv := &testVerifier{
		store:    mocks.NewMockStore(ctrl),
		mirror:   mocks.NewMockMirror(ctrl),
		accounts: mocks.NewMockAccountResolver(ctrl),
	}
	tv.verifier = deal.NewVerifier(tv.store, tv.mirror, tv.accounts)
	return tv
}

func claim(price string) domain.VerifyDealJob {
	return domain.VerifyDealJob{
		OwnerAccountID: ownerAccount,
		BuyerAccountID: buyerAccount,
		TransactionID:  txID,
		Price:          price,
		TokenID:        "0.0.100",
		SerialNumber:   "1",
	}
}

func acceptBidLog(t *testing.T, tokenAddress common.Address, serial int64, owner, buyer common.Address, amount int64) hedera.ContractLog {
	t.Helper()
	event := hedera.MarketABI.Events[hedera.EventAcceptBid]

	data, err := event.Inputs.NonIndexed().Pack(owner, buyer, big.NewInt(amount))
	require.NoError(t, err)

	return hedera.ContractLog{
		Address: "0x00000000000000000000000000000000000011d7",
		Data:    hexutil.Encode(data),
		Topics: []string{
			event.ID.Hex(),
			common.BytesToHash(tokenAddress.Bytes()).Hex(),
			common.BigToHash(big.NewInt(serial)).Hex(),
		},
	}
}

func transferLog() hedera.ContractLog {
	return hedera.ContractLog{
		Address: "0x0000000000000000000000000000000000000064",
		Data:    "0x",
		Topics:  []string{"0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"},
	}
}

func (tv *testVerifier) expectParties() {
	gomock.InOrder(
		tv.accounts.EXPECT().ResolveEVMAddress(gomock.Any(), buyerAccount).Return(buyerEVM.Hex(), nil),
		tv.accounts.EXPECT().ResolveEVMAddress(gomock.Any(), ownerAccount).Return(ownerEVM.Hex(), nil),
	)
}

func (tv *testVerifier) expectLookups(existing *schema.NftMarketDeal) {
	tv.store.EXPECT().GetNft(gomock.Any(), "0.0.100", "1").Return(&schema.Nft{ID: 10, TokenID: "0.0.100", SerialNumber: "1"}, nil)
	tv.store.EXPECT().GetDealByTransactionID(gomock.Any(), txID).Return(existing, nil)
}

func (tv *testVerifier) expectResult(logs ...hedera.ContractLog) {
	tv.mirror.EXPECT().
		GetContractResult(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id domain.TransactionID) (*hedera.ContractResult, error) {
			return &hedera.ContractResult{Status: "0x1", Timestamp: "1700000003.000000001", Logs: logs}, nil
		})
}

func TestVerify_RecordsDeal(t *testing.T) {
	tv := setupTestVerifier(t)
	tv.expectParties()
	tv.expectLookups(nil)
	tv.expectResult(transferLog(), acceptBidLog(t, token, 1, ownerEVM, buyerEVM, 500))
	tv.store.EXPECT().
		RecordDeal(gomock.Any(), store.RecordDealInput{
			NftID:              10,
			OwnerAccountID:     ownerAccount,
			BuyerAccountID:     buyerAccount,
			Price:              "500",
			TransactionID:      txID,
			ConsensusTimestamp: "1700000000123456789",
		}).
		Return(&schema.NftMarketDeal{ID: 1, NftID: 10, Price: "500", TransactionID: txID}, nil)

	recorded, err := tv.verifier.Verify(context.Background(), claim("500"))
	require.NoError(t, err)
	assert.Equal(t, txID, recorded.TransactionID)
}

func TestVerify_IsIdempotent(t *testing.T) {
	tv := setupTestVerifier(t)
	recorded := &schema.NftMarketDeal{ID: 1, NftID: 10, Price: "500", TransactionID: txID}

	// First run records
	tv.expectParties()
	tv.store.EXPECT().GetNft(gomock.Any(), "0.0.100", "1").Return(&schema.Nft{ID: 10}, nil).Times(2)
	gomock.InOrder(
		tv.store.EXPECT().GetDealByTransactionID(gomock.Any(), txID).Return(nil, nil),
		tv.store.EXPECT().GetDealByTransactionID(gomock.Any(), txID).Return(recorded, nil),
	)
	tv.expectResult(acceptBidLog(t, token, 1, ownerEVM, buyerEVM, 500))
	tv.store.EXPECT().RecordDeal(gomock.Any(), gomock.Any()).Return(recorded, nil).Times(1)

	_, err := tv.verifier.Verify(context.Background(), claim("500"))
	require.NoError(t, err)

	// Second run stops before the ledger
	tv.expectParties()
	_, err = tv.verifier.Verify(context.Background(), claim("500"))
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	assert.False(t, domain.Retryable(err))
}

func TestVerify_ConcurrentDuplicateIsAlreadyProcessed(t *testing.T) {
	tv := setupTestVerifier(t)
	tv.expectParties()
	tv.expectLookups(nil)
	tv.expectResult(acceptBidLog(t, token, 1, ownerEVM, buyerEVM, 500))
	tv.store.EXPECT().RecordDeal(gomock.Any(), gomock.Any()).Return(nil, domain.ErrAlreadyProcessed)

	_, err := tv.verifier.Verify(context.Background(), claim("500"))
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
}

func TestVerify_EventMismatch(t *testing.T) {
	otherToken := domain.EntityID{Num: 101}.SolidityAddress()
	stranger := common.HexToAddress("0x00000000000000000000000000000000000003e9")

	tests := []struct {
		name string
		log  func(t *testing.T) hedera.ContractLog
	}{
		{name: "amount", log: func(t *testing.T) hedera.ContractLog { return acceptBidLog(t, token, 1, ownerEVM, buyerEVM, 300) }},
		{name: "owner", log: func(t *testing.T) hedera.ContractLog { return acceptBidLog(t, token, 1, stranger, buyerEVM, 500) }},
		{name: "buyer", log: func(t *testing.T) hedera.ContractLog { return acceptBidLog(t, token, 1, ownerEVM, stranger, 500) }},
		{name: "token", log: func(t *testing.T) hedera.ContractLog { return acceptBidLog(t, otherToken, 1, ownerEVM, buyerEVM, 500) }},
		{name: "serial", log: func(t *testing.T) hedera.ContractLog { return acceptBidLog(t, token, 2, ownerEVM, buyerEVM, 500) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tv := setupTestVerifier(t)
			tv.expectParties()
			tv.expectLookups(nil)
			tv.expectResult(tt.log(t))

			_, err := tv.verifier.Verify(context.Background(), claim("500"))
			assert.ErrorIs(t, err, domain.ErrEventMismatch)
			assert.ErrorIs(t, err, domain.ErrValidationFailure)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestVerify_FirstDecodableLogWins(t *testing.T) {
	tv := setupTestVerifier(t)
	tv.expectParties()
	tv.expectLookups(nil)
	tv.expectResult(
		transferLog(),
		acceptBidLog(t, token, 1, ownerEVM, buyerEVM, 300),
		acceptBidLog(t, token, 1, ownerEVM, buyerEVM, 500),
	)

	_, err := tv.verifier.Verify(context.Background(), claim("500"))
	assert.ErrorIs(t, err, domain.ErrEventMismatch)
}

func TestVerify_NotABidAcceptTransaction(t *testing.T) {
	tv := setupTestVerifier(t)
	tv.expectParties()
	tv.expectLookups(nil)
	tv.expectResult(transferLog())

	_, err := tv.verifier.Verify(context.Background(), claim("500"))
	assert.ErrorIs(t, err, domain.ErrNotABidAcceptTransaction)
}

func TestVerify_MirrorFailures(t *testing.T) {
	t.Run("transaction not yet on mirror", func(t *testing.T) {
		tv := setupTestVerifier(t)
		tv.expectParties()
		tv.expectLookups(nil)
		tv.mirror.EXPECT().GetContractResult(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotFound)

		_, err := tv.verifier.Verify(context.Background(), claim("500"))
		assert.ErrorIs(t, err, domain.ErrTransient)
		assert.NotErrorIs(t, err, domain.ErrValidationFailure)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
		assert.True(t, domain.Retryable(err))
	})

	t.Run("mirror unavailable", func(t *testing.T) {
		tv := setupTestVerifier(t)
		tv.expectParties()
		tv.expectLookups(nil)
		tv.mirror.EXPECT().GetContractResult(gomock.Any(), gomock.Any()).Return(nil, domain.Transient(errors.New("503")))

		_, err := tv.verifier.Verify(context.Background(), claim("500"))
		assert.ErrorIs(t, err, domain.ErrTransient)
	})
}

func TestVerify_Parties(t *testing.T) {
	t.Run("buyer not resolvable", func(t *testing.T) {
		tv := setupTestVerifier(t)
		tv.accounts.EXPECT().ResolveEVMAddress(gomock.Any(), buyerAccount).Return("", domain.Validation("invalid entity id"))

		_, err := tv.verifier.Verify(context.Background(), claim("500"))
		assert.ErrorIs(t, err, domain.ErrAccountNotResolved)
	})

	t.Run("owner lookup transient", func(t *testing.T) {
		tv := setupTestVerifier(t)
		tv.accounts.EXPECT().ResolveEVMAddress(gomock.Any(), buyerAccount).Return(buyerEVM.Hex(), nil)
		tv.accounts.EXPECT().ResolveEVMAddress(gomock.Any(), ownerAccount).Return("", domain.Transient(errors.New("indexer down")))

		_, err := tv.verifier.Verify(context.Background(), claim("500"))
		assert.ErrorIs(t, err, domain.ErrTransient)
		assert.NotErrorIs(t, err, domain.ErrAccountNotResolved)
	})
}

func TestVerify_NftNotFound(t *testing.T) {
	tv := setupTestVerifier(t)
	tv.expectParties()
	tv.store.EXPECT().GetNft(gomock.Any(), "0.0.100", "1").Return(nil, nil)

	_, err := tv.verifier.Verify(context.Background(), claim("500"))
	assert.ErrorIs(t, err, domain.ErrNftNotFound)
}

func TestVerify_InvalidClaim(t *testing.T) {
	tv := setupTestVerifier(t)
	c := claim("0")

	_, err := tv.verifier.Verify(context.Background(), c)
	assert.ErrorIs(t, err, domain.ErrValidationFailure)
}
