package domain

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// EntityID is a ledger entity identifier in shard.realm.num form
type EntityID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// ParseEntityID parses "shard.realm.num"
func ParseEntityID(s string) (EntityID, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return EntityID{}, Validation("invalid entity id %q", s)
	}

	var nums [3]uint64
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return EntityID{}, Validation("invalid entity id %q", s)
		}
		nums[i] = n
	}

	if nums[0] > uint64(^uint32(0)) {
		return EntityID{}, Validation("invalid entity id %q: shard out of range", s)
	}

	return EntityID{Shard: nums[0], Realm: nums[1], Num: nums[2]}, nil
}

// EntityIDFromNum builds an id in the default shard and realm, as returned by the indexer
func EntityIDFromNum(num int64) EntityID {
	return EntityID{Num: uint64(num)}
}

// EntityIDFromSolidityAddress decodes a long-zero address into an entity id
func EntityIDFromSolidityAddress(address string) (EntityID, error) {
	if !common.IsHexAddress(address) {
		return EntityID{}, Validation("invalid solidity address %q", address)
	}
	b := common.HexToAddress(address).Bytes()

	return EntityID{
		Shard: uint64(binary.BigEndian.Uint32(b[0:4])),
		Realm: binary.BigEndian.Uint64(b[4:12]),
		Num:   binary.BigEndian.Uint64(b[12:20]),
	}, nil
}

// String returns the shard.realm.num representation
func (e EntityID) String() string {
	return fmt.Sprintf("%d.%d.%d", e.Shard, e.Realm, e.Num)
}

// QueryNum returns the trailing number used in indexer filters
func (e EntityID) QueryNum() string {
	return strconv.FormatUint(e.Num, 10)
}

// SolidityAddress returns the 20-byte long-zero address of the entity
func (e EntityID) SolidityAddress() common.Address {
	var b [20]byte
	binary.BigEndian.PutUint32(b[0:4], uint32(e.Shard))
	binary.BigEndian.PutUint64(b[4:12], e.Realm)
	binary.BigEndian.PutUint64(b[12:20], e.Num)
	return common.BytesToAddress(b[:])
}

// LongZeroEVMAddress returns the lowercase 0x-prefixed long-zero address
func (e EntityID) LongZeroEVMAddress() string {
	return strings.ToLower(e.SolidityAddress().Hex())
}

// QueryNum extracts the trailing number of a dotted id, or returns the input if it has no dots
func QueryNum(id string) string {
	parts := strings.Split(id, ".")
	return parts[len(parts)-1]
}

// FormatIndexerID formats a numeric indexer id as 0.0.N, returning "" for zero
func FormatIndexerID(num int64) string {
	if num == 0 {
		return ""
	}
	return EntityIDFromNum(num).String()
}

var transactionIDPattern = regexp.MustCompile(`^(\d+\.\d+\.\d+)@(\d+)\.(\d+)$`)

// TransactionID is a ledger transaction id, payer@seconds.nanos
type TransactionID struct {
	Payer   EntityID
	Seconds string
	Nanos   string
}

// ParseTransactionID parses "0.0.50@1700000000.123456789"
func ParseTransactionID(s string) (TransactionID, error) {
	m := transactionIDPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return TransactionID{}, Validation("invalid transaction id %q", s)
	}

	payer, err := ParseEntityID(m[1])
	if err != nil {
		return TransactionID{}, err
	}

	return TransactionID{Payer: payer, Seconds: m[2], Nanos: m[3]}, nil
}

// String returns the payer@seconds.nanos form
func (t TransactionID) String() string {
	return fmt.Sprintf("%s@%s.%s", t.Payer, t.Seconds, t.Nanos)
}

// MirrorFormat returns the payer-seconds-nanos form used by the mirror REST API
func (t TransactionID) MirrorFormat() string {
	return fmt.Sprintf("%s-%s-%s", t.Payer, t.Seconds, t.Nanos)
}

// ConsensusTimestamp returns the valid-start time with the dot removed
func (t TransactionID) ConsensusTimestamp() string {
	return t.Seconds + t.Nanos
}

// NanosToMillis converts a nanosecond timestamp string to milliseconds, rounding half up.
// Returns 0 for empty or malformed input.
func NanosToMillis(ns string) int64 {
	ns = strings.TrimSpace(ns)
	if ns == "" {
		return 0
	}
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		// seconds.nanos form
		secs, err := strconv.ParseInt(ns[:i], 10, 64)
		if err != nil {
			return 0
		}
		frac := (ns[i+1:] + "000000000")[:9]
		nanos, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0
		}
		return secs*1000 + (nanos+500_000)/1_000_000
	}

	v, ok := new(big.Int).SetString(ns, 10)
	if !ok {
		return 0
	}
	v.Add(v, big.NewInt(500_000))
	v.Quo(v, big.NewInt(1_000_000))
	return v.Int64()
}

// ParseAmount parses a non-negative decimal integer amount
func ParseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok || v.Sign() < 0 {
		return nil, Validation("invalid amount %q", s)
	}
	return v, nil
}

// NormalizeEVMAddress lowercases an address and repairs the indexer's escaped prefix
func NormalizeEVMAddress(address string) string {
	address = strings.Replace(address, "\\", "0", 1)
	return strings.ToLower(address)
}
