package schema

import (
	"time"
)

// NftMarketListing represents the nft_market_listings table - the cached listing state of an NFT.
// JobID holds the queue id of the pending expiry job and is null whenever IsListed is false.
type NftMarketListing struct {
	// ID is the internal database primary key
	ID       int64 `gorm:"column:id;primaryKey;autoIncrement"`
	IsListed bool  `gorm:"column:is_listed;not null;default:false;index"`
	// DesiredPrice is the asking price in tinybar as a decimal integer string
	DesiredPrice *string `gorm:"column:desired_price;type:text"`
	// ListingEndTimestamp is when the listing expires
	ListingEndTimestamp *time.Time `gorm:"column:listing_end_timestamp;type:timestamptz"`
	// JobID is the id of the scheduled expire-listing job
	JobID *string `gorm:"column:job_id;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the NftMarketListing model
func (NftMarketListing) TableName() string {
	return "nft_market_listings"
}
