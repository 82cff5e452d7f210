package schema

import (
	"time"
)

// Nft represents the nfts table - the cached view of one NFT (token id + serial number)
type Nft struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID is the collection's ledger id in shard.realm.num form
	TokenID string `gorm:"column:token_id;not null;type:text;uniqueIndex:idx_nfts_token_serial,priority:1"`
	// SerialNumber is the serial within the collection as a decimal integer string
	SerialNumber string `gorm:"column:serial_number;not null;type:text;uniqueIndex:idx_nfts_token_serial,priority:2"`
	// AccountID is the current owner account id
	AccountID *string `gorm:"column:account_id;type:text;index"`
	// CreatedTimestamp is the ledger mint time
	CreatedTimestamp *time.Time `gorm:"column:created_timestamp;type:timestamptz"`
	// ListingID references nft_market_listings
	ListingID *int64 `gorm:"column:listing_id"`
	// MetadataID references nft_metadata
	MetadataID *int64 `gorm:"column:metadata_id"`
	// CollectionID references nft_collections
	CollectionID *int64 `gorm:"column:collection_id;index"`
	// CreatedAt is the timestamp when this record was first cached
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations (loaded on demand, never saved through the parent)
	Listing    *NftMarketListing `gorm:"foreignKey:ListingID"`
	Metadata   *NftMetadata      `gorm:"foreignKey:MetadataID"`
	Collection *NftCollection    `gorm:"foreignKey:CollectionID"`
}

// TableName specifies the table name for the Nft model
func (Nft) TableName() string {
	return "nfts"
}
