package hedera

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/sphera-world/market-engine/internal/domain"
)

// EventAcceptBid is the marketplace event emitted when an owner accepts a bid
const EventAcceptBid = "AcceptBid"

// ErrEventNotDecodable is returned when a log does not decode as the requested event
var ErrEventNotDecodable = errors.New("event not decodable")

// marketABIJSON is the subset of the marketplace contract ABI the engine uses
const marketABIJSON = `[
  {"type":"function","name":"getTokenBids","stateMutability":"view",
   "inputs":[{"name":"token","type":"address"},{"name":"serialNumber","type":"uint256"},{"name":"page","type":"uint256"},{"name":"pageSize","type":"uint256"}],
   "outputs":[{"name":"","type":"tuple[]","components":[{"name":"owner","type":"address"},{"name":"amount","type":"uint256"},{"name":"token","type":"address"},{"name":"serialNumber","type":"uint256"}]}]},
  {"type":"function","name":"getTokenBid","stateMutability":"view",
   "inputs":[{"name":"token","type":"address"},{"name":"serialNumber","type":"uint256"},{"name":"buyer","type":"address"}],
   "outputs":[{"name":"","type":"tuple","components":[{"name":"owner","type":"address"},{"name":"amount","type":"uint256"},{"name":"token","type":"address"},{"name":"serialNumber","type":"uint256"}]}]},
  {"type":"function","name":"getReceivedBids","stateMutability":"view",
   "inputs":[{"name":"account","type":"address"},{"name":"page","type":"uint256"},{"name":"pageSize","type":"uint256"}],
   "outputs":[{"name":"","type":"tuple[]","components":[{"name":"owner","type":"address"},{"name":"amount","type":"uint256"},{"name":"token","type":"address"},{"name":"serialNumber","type":"uint256"}]}]},
  {"type":"function","name":"getSentBids","stateMutability":"view",
   "inputs":[{"name":"account","type":"address"},{"name":"page","type":"uint256"},{"name":"pageSize","type":"uint256"}],
   "outputs":[{"name":"","type":"tuple[]","components":[{"name":"owner","type":"address"},{"name":"amount","type":"uint256"},{"name":"token","type":"address"},{"name":"serialNumber","type":"uint256"}]}]},
  {"type":"function","name":"nfts","stateMutability":"view",
   "inputs":[{"name":"","type":"string"}],
   "outputs":[{"name":"owner","type":"address"},{"name":"price","type":"uint256"},{"name":"token","type":"address"},{"name":"serialNumber","type":"uint256"},{"name":"isListed","type":"bool"}]},
  {"type":"function","name":"unlistNFT","stateMutability":"nonpayable",
   "inputs":[{"name":"token","type":"address"},{"name":"serialNumber","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"deleteBid","stateMutability":"nonpayable",
   "inputs":[{"name":"token","type":"address"},{"name":"serialNumber","type":"uint256"},{"name":"buyer","type":"address"}],"outputs":[]},
  {"type":"event","name":"AcceptBid","anonymous":false,
   "inputs":[{"name":"token","type":"address","indexed":true},{"name":"serialNumber","type":"uint256","indexed":true},{"name":"owner","type":"address","indexed":false},{"name":"buyer","type":"address","indexed":false},{"name":"acceptedBidAmount","type":"uint256","indexed":false}]}
]`

// MarketABI is the parsed marketplace contract ABI.
var MarketABI = mustParseABI(marketABIJSON)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("invalid marketplace abi: %v", err))
	}
	return parsed
}

// bidTuple mirrors the contract's Bid struct
type bidTuple struct {
	Owner        common.Address
	Amount       *big.Int
	Token        common.Address
	SerialNumber *big.Int
}

func (b bidTuple) toDomain() domain.Bid {
	return domain.Bid{
		Owner:        b.Owner,
		Amount:       b.Amount,
		Token:        b.Token,
		SerialNumber: b.SerialNumber,
	}
}

// itemTuple mirrors the outputs of nfts(string)
type itemTuple struct {
	Owner        common.Address
	Price        *big.Int
	Token        common.Address
	SerialNumber *big.Int
	IsListed     bool
}

// acceptBidLog mirrors the AcceptBid event arguments
type acceptBidLog struct {
	Token             common.Address
	SerialNumber      *big.Int
	Owner             common.Address
	Buyer             common.Address
	AcceptedBidAmount *big.Int
}

// DecodeEventLog decodes a contract log into the named event's arguments.
// topics includes the event signature at index 0, as reported by the mirror node.
func DecodeEventLog(name string, data string, topics []string, out interface{}) error {
	event, ok := MarketABI.Events[name]
	if !ok {
		return fmt.Errorf("unknown event %s", name)
	}
	if len(topics) == 0 || common.HexToHash(topics[0]) != event.ID {
		return ErrEventNotDecodable
	}

	raw, err := hexutil.Decode(normalizeHex(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEventNotDecodable, err)
	}
	if err := MarketABI.UnpackIntoInterface(out, name, raw); err != nil {
		return fmt.Errorf("%w: %v", ErrEventNotDecodable, err)
	}

	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	hashes := make([]common.Hash, 0, len(topics)-1)
	for _, t := range topics[1:] {
		hashes = append(hashes, common.HexToHash(t))
	}
	if err := abi.ParseTopics(out, indexed, hashes); err != nil {
		return fmt.Errorf("%w: %v", ErrEventNotDecodable, err)
	}
	return nil
}

// DecodeAcceptBid decodes an AcceptBid log
func DecodeAcceptBid(log ContractLog) (*domain.AcceptBidEvent, error) {
	var decoded acceptBidLog
	if err := DecodeEventLog(EventAcceptBid, log.Data, log.Topics, &decoded); err != nil {
		return nil, err
	}
	return &domain.AcceptBidEvent{
		Token:             decoded.Token,
		SerialNumber:      decoded.SerialNumber,
		Owner:             decoded.Owner,
		Buyer:             decoded.Buyer,
		AcceptedBidAmount: decoded.AcceptedBidAmount,
	}, nil
}

// normalizeHex accepts "0x"-prefixed or bare hex; empty data decodes as no bytes
func normalizeHex(s string) string {
	if s == "" || s == "0x" {
		return "0x"
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "0x" + s
	}
	return s
}
