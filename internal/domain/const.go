package domain

const (
	// TinybarsPerHbar is the number of tinybars in one HBAR
	TinybarsPerHbar = 100_000_000

	// HbarDecimals is the exponent between tinybar and HBAR
	HbarDecimals = 8

	// Pagination limits shared by every paged read
	DefaultPageSize = 10
	MaxPageSize     = 20

	// MaxActivities caps the activity feed of a single NFT
	MaxActivities = 10

	// UsdDisplayPlaces is the number of decimals shown for USD amounts
	UsdDisplayPlaces = 2
)
