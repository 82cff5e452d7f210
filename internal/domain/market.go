package domain

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Caller is the authenticated identity a request acts on behalf of
type Caller struct {
	UserID    int64
	AccountID string
}

// Bid is a bid as stored by the marketplace contract
type Bid struct {
	Owner        common.Address
	Amount       *big.Int
	Token        common.Address
	SerialNumber *big.Int
}

// Active reports whether the bid still holds funds
func (b Bid) Active() bool {
	return b.Amount != nil && b.Amount.Sign() != 0
}

// MarketItemInfo is the contract's view of a listing merged with the cached end time
type MarketItemInfo struct {
	Owner               string   `json:"owner"`
	Price               *big.Int `json:"price"`
	Token               string   `json:"token"`
	SerialNumber        *big.Int `json:"serialNumber"`
	IsListed            bool     `json:"isListed"`
	ListingEndTimestamp *int64   `json:"listingEndTimestamp"`
}

// AcceptBidEvent is the decoded AcceptBid log of the marketplace contract
type AcceptBidEvent struct {
	Token             common.Address
	SerialNumber      *big.Int
	Owner             common.Address
	Buyer             common.Address
	AcceptedBidAmount *big.Int
}

// NftAttribute is one metadata trait
type NftAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// NftMetadata is the JSON document an NFT's metadata pointer resolves to
type NftMetadata struct {
	Name        string         `json:"name"`
	Image       string         `json:"image"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Attributes  []NftAttribute `json:"attributes"`
}

// MetadataValue is either a resolved document or the raw pointer string
type MetadataValue struct {
	Resolved *NftMetadata
	Raw      string
}

// MarshalJSON renders the resolved document, the raw pointer, or null
func (m MetadataValue) MarshalJSON() ([]byte, error) {
	if m.Resolved != nil {
		return json.Marshal(m.Resolved)
	}
	if m.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(m.Raw)
}

// NftOwner is the owner of an NFT as known by the user cache
type NftOwner struct {
	ID         *int64  `json:"id"`
	AccountID  string  `json:"accountId"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Username   *string `json:"username"`
	EvmAddress *string `json:"evmAddress"`
}

// CollectionView is a collection as returned to clients
type CollectionView struct {
	TokenID             string        `json:"token_id"`
	Name                string        `json:"name"`
	Symbol              string        `json:"symbol"`
	MaxSupply           int64         `json:"max_supply"`
	TotalSupply         int64         `json:"total_supply"`
	CreatedTimestamp    int64         `json:"created_timestamp"`
	RoyaltyFee          *string       `json:"royalty_fee"`
	RoyaltyFeeCollector string        `json:"royalty_fee_collector"`
	Metadata            MetadataValue `json:"metadata"`
}

// NftView is an NFT as returned to clients
type NftView struct {
	TokenID           string          `json:"token_id"`
	SerialNumber      string          `json:"serial_number"`
	CreatedTimestamp  int64           `json:"created_timestamp"`
	Token             *CollectionView `json:"token"`
	Metadata          MetadataValue   `json:"metadata"`
	YouAreOwner       bool            `json:"youAreOwner"`
	Owner             *NftOwner       `json:"owner"`
	Price             *string         `json:"price"`
	ListingTimerJobID *string         `json:"listingTimerJobId,omitempty"`
}

// BidView is a contract bid enriched for clients
type BidView struct {
	Amount          string   `json:"amount"`
	AmountInUsd     string   `json:"amountInUsd"`
	OwnerEvmAddress string   `json:"ownerEvmAddress"`
	TokenID         string   `json:"tokenId"`
	SerialNumber    string   `json:"serialNumber"`
	Active          bool     `json:"active"`
	OwnerAccountID  *string  `json:"ownerAccountId"`
	Username        *string  `json:"username"`
	Nft             *NftView `json:"nft"`
}

// ActivityEventType classifies an NFT activity
type ActivityEventType string

const (
	ActivitySale ActivityEventType = "sale"
)

// ActivityParty is one side of an activity
type ActivityParty struct {
	AccountID *string `json:"accountId"`
	Username  *string `json:"username"`
}

// Activity is one entry of an NFT's activity feed
type Activity struct {
	EventType ActivityEventType `json:"eventType"`
	Price     *string           `json:"price"`
	From      ActivityParty     `json:"from"`
	To        ActivityParty     `json:"to"`
	Timestamp int64             `json:"timestamp"`
}

// PriceHistoryChunk is the average sale price of one UTC day
type PriceHistoryChunk struct {
	Timestamp int64  `json:"timestamp"`
	Price     string `json:"price"`
}

// TransactionType classifies an account transaction from the account's point of view
type TransactionType string

const (
	TransactionReceivedNFT     TransactionType = "received_nft"
	TransactionTransferredNFT  TransactionType = "transferred_nft"
	TransactionReceivedHbar    TransactionType = "received_hbar"
	TransactionTransferredHbar TransactionType = "transferred_hbar"
)

// TransferToken is the token moved by a transfer
type TransferToken struct {
	Symbol   string `json:"symbol"`
	Decimals int64  `json:"decimals"`
	Name     string `json:"name"`
	TokenID  int64  `json:"token_id"`
}

// TransferNft is the NFT moved by a transfer
type TransferNft struct {
	SerialNumber int64 `json:"serial_number"`
}

// Transfer is one leg of a transaction
type Transfer struct {
	Type              string         `json:"type"`
	SenderAccountID   int64          `json:"sender_account_id"`
	ReceiverAccountID int64          `json:"receiver_account_id"`
	Amount            int64          `json:"amount"`
	Token             *TransferToken `json:"token"`
	Nft               *TransferNft   `json:"nft"`
}

// TransactionDetail is the transaction part of a TransactionView
type TransactionDetail struct {
	PayerAccountID     string          `json:"payer_account_id"`
	Result             int64           `json:"result"`
	Type               TransactionType `json:"type"`
	ID                 string          `json:"id"`
	ChargedTxFee       int64           `json:"charged_tx_fee"`
	ConsensusTimestamp int64           `json:"consensus_timestamp"`
	Transfers          []Transfer      `json:"transfers"`
}

// TransactionView is an account transaction as returned to clients
type TransactionView struct {
	Amount      int64             `json:"amount"`
	Transaction TransactionDetail `json:"transaction"`
}

// AccountBalance is an account balance in HBAR and USD
type AccountBalance struct {
	Balance      string `json:"balance"`
	BalanceInUsd string `json:"balanceInUsd"`
}

// ValidatedCollection is a collection the marketplace accepts
type ValidatedCollection struct {
	TokenID string
	Creator string
}

// ParseValidatedCollections parses a "tokenId/creator,tokenId/creator" list.
// Entries without a creator are kept with an empty creator.
func ParseValidatedCollections(csv string) []ValidatedCollection {
	var out []ValidatedCollection
	for _, item := range strings.Split(csv, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		tokenID, creator, _ := strings.Cut(item, "/")
		out = append(out, ValidatedCollection{
			TokenID: strings.TrimSpace(tokenID),
			Creator: strings.TrimSpace(creator),
		})
	}
	return out
}
