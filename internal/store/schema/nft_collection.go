package schema

import (
	"time"
)

// NftCollection represents the nft_collections table - one row per token class (collection)
type NftCollection struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID is the collection's ledger id in shard.realm.num form
	TokenID string `gorm:"column:token_id;not null;uniqueIndex;type:text"`
	Name    *string `gorm:"column:name;type:text"`
	Symbol  *string `gorm:"column:symbol;type:text"`
	// MaxSupply and TotalSupply are decimal integer strings as reported by the indexer
	MaxSupply   *string `gorm:"column:max_supply;type:text"`
	TotalSupply *string `gorm:"column:total_supply;type:text"`
	// RoyaltyFee is the royalty ratio (numerator/denominator) as a decimal string
	RoyaltyFee *string `gorm:"column:royalty_fee;type:text"`
	// RoyaltyFeeCollector is the account id receiving royalties
	RoyaltyFeeCollector *string `gorm:"column:royalty_fee_collector;type:text"`
	// Creator is the account id of the validated creator of the collection
	Creator *string `gorm:"column:creator;type:text;index"`
	// CreatedTimestamp is the ledger creation time of the token class
	CreatedTimestamp *time.Time `gorm:"column:created_timestamp;type:timestamptz"`
	// CreatedAt is the timestamp when this record was first cached
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when the row was last merged
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the NftCollection model
func (NftCollection) TableName() string {
	return "nft_collections"
}
