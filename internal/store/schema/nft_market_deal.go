package schema

import (
	"time"
)

// NftMarketDeal represents the nft_market_deals table - an append-only record of verified sales.
// TransactionID is unique so a deal can only ever be recorded once.
type NftMarketDeal struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// NftID references nfts
	NftID int64 `gorm:"column:nft_id;not null;index"`
	// OwnerID references users for the seller when registered
	OwnerID *int64 `gorm:"column:owner_id"`
	// BuyerID references users for the buyer when registered
	BuyerID *int64 `gorm:"column:buyer_id"`
	// OwnerAccountID is the seller account id
	OwnerAccountID string `gorm:"column:owner_account_id;not null;type:text"`
	// BuyerAccountID is the buyer account id
	BuyerAccountID string `gorm:"column:buyer_account_id;not null;type:text"`
	// Price is the accepted bid amount in tinybar as a decimal integer string
	Price string `gorm:"column:price;not null;type:text"`
	// TransactionID is the ledger transaction id (payer@seconds.nanos)
	TransactionID string `gorm:"column:transaction_id;not null;uniqueIndex;type:text"`
	// ConsensusTimestamp is the transaction's consensus timestamp (seconds and nanos concatenated)
	ConsensusTimestamp string `gorm:"column:consensus_timestamp;not null;type:text"`
	// CreatedAt is the timestamp when the deal was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the NftMarketDeal model
func (NftMarketDeal) TableName() string {
	return "nft_market_deals"
}
