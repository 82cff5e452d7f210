package schema

import (
	"time"

	"gorm.io/datatypes"
)

// NftAttribute is one trait stored inside nft_metadata.attributes
type NftAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// NftMetadata represents the nft_metadata table - the resolved metadata document of an NFT
type NftMetadata struct {
	// ID is the internal database primary key
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name        *string `gorm:"column:name;type:text"`
	Image       *string `gorm:"column:image;type:text"`
	Type        *string `gorm:"column:type;type:text"`
	Description *string `gorm:"column:description;type:text"`
	// Attributes is the list of traits as JSONB
	Attributes datatypes.JSONSlice[NftAttribute] `gorm:"column:attributes;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the NftMetadata model
func (NftMetadata) TableName() string {
	return "nft_metadata"
}
