package hedera_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/providers/hedera"
)

var (
	testToken = domain.EntityID{Num: 100}.SolidityAddress()
	testOwner = common.HexToAddress("0x00000000000000000000000000000000000001f4")
	testBuyer = common.HexToAddress("0x00000000000000000000000000000000001b5a00")
)

// buildAcceptBidLog encodes an AcceptBid log the way the mirror node reports it
func buildAcceptBidLog(t *testing.T, token common.Address, serial int64, owner, buyer common.Address, amount int64) hedera.ContractLog {
	t.Helper()
	event := hedera.MarketABI.Events[hedera.EventAcceptBid]

	data, err := event.Inputs.NonIndexed().Pack(owner, buyer, big.NewInt(amount))
	require.NoError(t, err)

	return hedera.ContractLog{
		Address: "0x00000000000000000000000000000000000011d7",
		Data:    hexutil.Encode(data),
		Topics: []string{
			event.ID.Hex(),
			common.BytesToHash(token.Bytes()).Hex(),
			common.BigToHash(big.NewInt(serial)).Hex(),
		},
	}
}

func TestDecodeAcceptBid(t *testing.T) {
	log := buildAcceptBidLog(t, testToken, 1, testOwner, testBuyer, 300)

	event, err := hedera.DecodeAcceptBid(log)
	require.NoError(t, err)

	assert.Equal(t, testToken, event.Token)
	assert.Equal(t, int64(1), event.SerialNumber.Int64())
	assert.Equal(t, testOwner, event.Owner)
	assert.Equal(t, testBuyer, event.Buyer)
	assert.Equal(t, int64(300), event.AcceptedBidAmount.Int64())
}

func TestDecodeAcceptBid_BareHexData(t *testing.T) {
	log := buildAcceptBidLog(t, testToken, 7, testOwner, testBuyer, 42)
	log.Data = log.Data[2:]

	event, err := hedera.DecodeAcceptBid(log)
	require.NoError(t, err)
	assert.Equal(t, int64(42), event.AcceptedBidAmount.Int64())
}

func TestDecodeAcceptBid_NotDecodable(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*hedera.ContractLog)
	}{
		{
			name: "no topics",
			mutate: func(l *hedera.ContractLog) {
				l.Topics = nil
			},
		},
		{
			name: "other event signature",
			mutate: func(l *hedera.ContractLog) {
				l.Topics[0] = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef").Hex()
			},
		},
		{
			name: "truncated data",
			mutate: func(l *hedera.ContractLog) {
				l.Data = l.Data[:66]
			},
		},
		{
			name: "invalid hex data",
			mutate: func(l *hedera.ContractLog) {
				l.Data = "0xzz"
			},
		},
		{
			name: "missing indexed topic",
			mutate: func(l *hedera.ContractLog) {
				l.Topics = l.Topics[:2]
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := buildAcceptBidLog(t, testToken, 1, testOwner, testBuyer, 300)
			tt.mutate(&log)

			event, err := hedera.DecodeAcceptBid(log)
			assert.Nil(t, event)
			assert.ErrorIs(t, err, hedera.ErrEventNotDecodable)
		})
	}
}
