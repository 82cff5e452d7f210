package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphera-world/market-engine/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func stringPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

// buildTestCollection creates a collection input with every column populated
func buildTestCollection(tokenID string) UpsertCollectionInput {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return UpsertCollectionInput{
		TokenID:             tokenID,
		Name:                stringPtr("Sphera Genesis"),
		Symbol:              stringPtr("SPG"),
		MaxSupply:           stringPtr("1000"),
		TotalSupply:         stringPtr("10"),
		RoyaltyFee:          stringPtr("0.05"),
		RoyaltyFeeCollector: stringPtr("0.0.7001"),
		Creator:             stringPtr("0.0.7001"),
		CreatedTimestamp:    &created,
	}
}

// buildTestNft creates an NFT input owned by owner inside the given collection
func buildTestNft(tokenID, serial, owner string) UpsertNftInput {
	created := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	collection := buildTestCollection(tokenID)
	return UpsertNftInput{
		TokenID:          tokenID,
		SerialNumber:     serial,
		AccountID:        stringPtr(owner),
		CreatedTimestamp: &created,
		Metadata: &domain.NftMetadata{
			Name:        "Genesis #" + serial,
			Image:       "https://ipfs.io/ipfs/bafyimage",
			Type:        "image/png",
			Description: "first drop",
			Attributes:  []domain.NftAttribute{{TraitType: "rarity", Value: "rare"}},
		},
		Collection: &collection,
	}
}

// =============================================================================
// Tests
// =============================================================================

func testUpsertNft(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates nft with collection and metadata", func(t *testing.T) {
		nft, err := store.UpsertNft(ctx, buildTestNft("0.0.100", "1", "0.0.7001"))
		require.NoError(t, err)
		require.NotNil(t, nft)

		got, err := store.GetNft(ctx, "0.0.100", "1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, nft.ID, got.ID)
		assert.Equal(t, "0.0.7001", *got.AccountID)
		require.NotNil(t, got.Collection)
		assert.Equal(t, "Sphera Genesis", *got.Collection.Name)
		require.NotNil(t, got.Metadata)
		assert.Equal(t, "Genesis #1", *got.Metadata.Name)
		require.Len(t, got.Metadata.Attributes, 1)
		assert.Equal(t, "rarity", got.Metadata.Attributes[0].TraitType)
		assert.Nil(t, got.Listing)
	})

	t.Run("merge never overwrites populated columns with empty values", func(t *testing.T) {
		_, err := store.UpsertNft(ctx, buildTestNft("0.0.101", "1", "0.0.7001"))
		require.NoError(t, err)

		_, err = store.UpsertNft(ctx, UpsertNftInput{
			TokenID:      "0.0.101",
			SerialNumber: "1",
			AccountID:    stringPtr(""),
			Metadata:     &domain.NftMetadata{Description: "updated"},
			Collection:   &UpsertCollectionInput{TokenID: "0.0.101", Name: stringPtr(""), TotalSupply: stringPtr("11")},
		})
		require.NoError(t, err)

		got, err := store.GetNft(ctx, "0.0.101", "1")
		require.NoError(t, err)
		assert.Equal(t, "0.0.7001", *got.AccountID)
		assert.NotNil(t, got.CreatedTimestamp)
		assert.Equal(t, "Genesis #1", *got.Metadata.Name)
		assert.Equal(t, "updated", *got.Metadata.Description)
		assert.Len(t, got.Metadata.Attributes, 1)
		assert.Equal(t, "Sphera Genesis", *got.Collection.Name)
		assert.Equal(t, "11", *got.Collection.TotalSupply)
		assert.Equal(t, "0.0.7001", *got.Collection.Creator)
	})

	t.Run("owner change is applied", func(t *testing.T) {
		_, err := store.UpsertNft(ctx, buildTestNft("0.0.102", "1", "0.0.7001"))
		require.NoError(t, err)

		_, err = store.UpsertNft(ctx, UpsertNftInput{TokenID: "0.0.102", SerialNumber: "1", AccountID: stringPtr("0.0.7002")})
		require.NoError(t, err)

		got, err := store.GetNft(ctx, "0.0.102", "1")
		require.NoError(t, err)
		assert.Equal(t, "0.0.7002", *got.AccountID)
	})

	t.Run("unknown nft returns nil", func(t *testing.T) {
		got, err := store.GetNft(ctx, "0.0.404", "1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testCollections(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("ensure seeds and keeps existing creator", func(t *testing.T) {
		_, err := store.UpsertCollection(ctx, buildTestCollection("0.0.200"))
		require.NoError(t, err)

		err = store.EnsureCollections(ctx, []domain.ValidatedCollection{
			{TokenID: "0.0.200", Creator: "0.0.9999"},
			{TokenID: "0.0.201", Creator: "0.0.7003"},
			{TokenID: "0.0.202"},
		})
		require.NoError(t, err)

		existing, err := store.GetCollection(ctx, "0.0.200")
		require.NoError(t, err)
		assert.Equal(t, "0.0.7001", *existing.Creator)
		assert.Equal(t, "Sphera Genesis", *existing.Name)

		seeded, err := store.GetCollection(ctx, "0.0.201")
		require.NoError(t, err)
		require.NotNil(t, seeded)
		assert.Equal(t, "0.0.7003", *seeded.Creator)
		assert.Nil(t, seeded.Name)

		bare, err := store.GetCollection(ctx, "0.0.202")
		require.NoError(t, err)
		require.NotNil(t, bare)
		assert.Nil(t, bare.Creator)
	})

	t.Run("ensure twice is idempotent", func(t *testing.T) {
		input := []domain.ValidatedCollection{{TokenID: "0.0.210", Creator: "0.0.7001"}}
		require.NoError(t, store.EnsureCollections(ctx, input))
		require.NoError(t, store.EnsureCollections(ctx, input))

		got, err := store.GetCollectionsByTokenIDs(ctx, []string{"0.0.210", "0.0.404"})
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Contains(t, got, "0.0.210")
	})

	t.Run("empty inputs", func(t *testing.T) {
		require.NoError(t, store.EnsureCollections(ctx, nil))
		got, err := store.GetCollectionsByTokenIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func testUpdateListing(t *testing.T, store Store) {
	ctx := context.Background()

	nft, err := store.UpsertNft(ctx, buildTestNft("0.0.300", "1", "0.0.7001"))
	require.NoError(t, err)

	end := time.Now().Add(time.Hour).UTC().Truncate(time.Microsecond)

	t.Run("list creates listing with job", func(t *testing.T) {
		listing, err := store.UpdateListing(ctx, nft.ID, ListingUpdate{
			IsListed:            boolPtr(true),
			DesiredPrice:        stringPtr("5000000000"),
			ListingEndTimestamp: &end,
			JobID:               stringPtr("market-timer-1"),
		})
		require.NoError(t, err)
		assert.True(t, listing.IsListed)
		assert.Equal(t, "5000000000", *listing.DesiredPrice)
		assert.Equal(t, "market-timer-1", *listing.JobID)
		assert.True(t, end.Equal(*listing.ListingEndTimestamp))

		got, err := store.GetNft(ctx, "0.0.300", "1")
		require.NoError(t, err)
		require.NotNil(t, got.Listing)
		assert.Equal(t, listing.ID, got.Listing.ID)
	})

	t.Run("relist replaces job id on the same listing", func(t *testing.T) {
		before, err := store.GetNft(ctx, "0.0.300", "1")
		require.NoError(t, err)

		listing, err := store.UpdateListing(ctx, nft.ID, ListingUpdate{
			IsListed: boolPtr(true),
			JobID:    stringPtr("market-timer-2"),
		})
		require.NoError(t, err)
		assert.Equal(t, before.Listing.ID, listing.ID)
		assert.Equal(t, "market-timer-2", *listing.JobID)
		assert.Equal(t, "5000000000", *listing.DesiredPrice)
	})

	t.Run("unlist clears job id", func(t *testing.T) {
		listing, err := store.UpdateListing(ctx, nft.ID, ListingUpdate{IsListed: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, listing.IsListed)
		assert.Nil(t, listing.JobID)
	})

	t.Run("unknown nft", func(t *testing.T) {
		_, err := store.UpdateListing(ctx, -1, ListingUpdate{IsListed: boolPtr(false)})
		assert.ErrorIs(t, err, domain.ErrNftNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func testListNfts(t *testing.T, store Store) {
	ctx := context.Background()

	for _, serial := range []string{"1", "2", "3"} {
		_, err := store.UpsertNft(ctx, buildTestNft("0.0.400", serial, "0.0.7001"))
		require.NoError(t, err)
	}
	other := buildTestNft("0.0.401", "1", "0.0.7002")
	other.Collection.Name = stringPtr("Other Things")
	other.Collection.Creator = stringPtr("0.0.7003")
	listedNft, err := store.UpsertNft(ctx, other)
	require.NoError(t, err)

	end := time.Now().Add(time.Hour)
	_, err = store.UpdateListing(ctx, listedNft.ID, ListingUpdate{
		IsListed:            boolPtr(true),
		DesiredPrice:        stringPtr("100"),
		ListingEndTimestamp: &end,
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		filter   NftQueryFilter
		expected int
	}{
		{name: "by token", filter: NftQueryFilter{TokenID: stringPtr("0.0.400")}, expected: 3},
		{name: "by token and serial", filter: NftQueryFilter{TokenID: stringPtr("0.0.400"), SerialNumber: stringPtr("2")}, expected: 1},
		{name: "by account", filter: NftQueryFilter{AccountID: stringPtr("0.0.7002")}, expected: 1},
		{name: "only listed", filter: NftQueryFilter{OnlyListed: true, TokenID: stringPtr("0.0.401")}, expected: 1},
		{name: "only listed excludes unlisted", filter: NftQueryFilter{OnlyListed: true, TokenID: stringPtr("0.0.400")}, expected: 0},
		{name: "by name", filter: NftQueryFilter{Search: &NftSearch{Name: "other thi"}}, expected: 1},
		{name: "by name or token", filter: NftQueryFilter{Search: &NftSearch{Name: "other thi", TokenID: stringPtr("0.0.400")}}, expected: 4},
		{name: "by name or token and serial", filter: NftQueryFilter{Search: &NftSearch{Name: "other thi", TokenID: stringPtr("0.0.400"), SerialNumber: stringPtr("2")}}, expected: 2},
		{name: "search with account", filter: NftQueryFilter{AccountID: stringPtr("0.0.7001"), Search: &NftSearch{Name: "other thi", TokenID: stringPtr("0.0.400")}}, expected: 3},
		{name: "ascending", filter: NftQueryFilter{TokenID: stringPtr("0.0.400"), Ascending: true}, expected: 3},
		{name: "by creator", filter: NftQueryFilter{Creator: stringPtr("0.0.7003"), TokenID: stringPtr("0.0.401")}, expected: 1},
		{name: "excluding account", filter: NftQueryFilter{ExcludeAccountID: stringPtr("0.0.7001"), TokenID: stringPtr("0.0.400")}, expected: 0},
		{name: "limit", filter: NftQueryFilter{TokenID: stringPtr("0.0.400"), Limit: 2}, expected: 2},
		{name: "offset", filter: NftQueryFilter{TokenID: stringPtr("0.0.400"), Limit: 2, Offset: 2}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nfts, err := store.ListNfts(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, nfts, tt.expected)
			for _, n := range nfts {
				assert.NotNil(t, n.Collection)
			}
		})
	}
}

func testListNftsOrder(t *testing.T, store Store) {
	ctx := context.Background()

	for _, serial := range []string{"10", "9", "100"} {
		_, err := store.UpsertNft(ctx, buildTestNft("0.0.410", serial, "0.0.7001"))
		require.NoError(t, err)
	}
	tokenID := "0.0.410"

	serials := func(orderBy string, ascending bool) []string {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{TokenID: &tokenID, OrderBy: orderBy, Ascending: ascending})
		require.NoError(t, err)
		out := make([]string, 0, len(nfts))
		for _, n := range nfts {
			out = append(out, n.SerialNumber)
		}
		return out
	}

	assert.Equal(t, []string{"9", "10", "100"}, serials("serial_number", true))
	assert.Equal(t, []string{"100", "10", "9"}, serials("serial_number", false))
	assert.Equal(t, []string{"100", "9", "10"}, serials("", false), "defaults to last update")
	assert.Equal(t, []string{"100", "9", "10"}, serials("not_a_column", false))
}

func testGetExpiredListings(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now()

	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	expired, err := store.UpsertNft(ctx, buildTestNft("0.0.500", "1", "0.0.7001"))
	require.NoError(t, err)
	_, err = store.UpdateListing(ctx, expired.ID, ListingUpdate{IsListed: boolPtr(true), ListingEndTimestamp: &past})
	require.NoError(t, err)

	active, err := store.UpsertNft(ctx, buildTestNft("0.0.500", "2", "0.0.7001"))
	require.NoError(t, err)
	_, err = store.UpdateListing(ctx, active.ID, ListingUpdate{IsListed: boolPtr(true), ListingEndTimestamp: &future, JobID: stringPtr("market-timer-a")})
	require.NoError(t, err)

	unlisted, err := store.UpsertNft(ctx, buildTestNft("0.0.500", "3", "0.0.7001"))
	require.NoError(t, err)
	_, err = store.UpdateListing(ctx, unlisted.ID, ListingUpdate{IsListed: boolPtr(false), ListingEndTimestamp: &past})
	require.NoError(t, err)

	rows, err := store.GetExpiredListings(ctx, now, 100)
	require.NoError(t, err)

	var found []ExpiredListing
	for _, r := range rows {
		if r.TokenID == "0.0.500" {
			found = append(found, r)
		}
	}
	require.Len(t, found, 1)
	assert.Equal(t, expired.ID, found[0].NftID)
	assert.Equal(t, "1", found[0].SerialNumber)
	assert.Nil(t, found[0].JobID)
}

func testRecordDeal(t *testing.T, store Store) {
	ctx := context.Background()

	nft, err := store.UpsertNft(ctx, buildTestNft("0.0.600", "1", "0.0.7001"))
	require.NoError(t, err)

	input := RecordDealInput{
		NftID:              nft.ID,
		OwnerAccountID:     "0.0.7001",
		BuyerAccountID:     "0.0.7002",
		Price:              "300",
		TransactionID:      "0.0.50@1700000000.123456789",
		ConsensusTimestamp: "1700000000123456789",
	}

	t.Run("records deal and moves ownership", func(t *testing.T) {
		deal, err := store.RecordDeal(ctx, input)
		require.NoError(t, err)
		assert.NotZero(t, deal.ID)
		assert.NotNil(t, deal.OwnerID)
		assert.NotNil(t, deal.BuyerID)

		got, err := store.GetNft(ctx, "0.0.600", "1")
		require.NoError(t, err)
		assert.Equal(t, "0.0.7002", *got.AccountID)

		byTx, err := store.GetDealByTransactionID(ctx, input.TransactionID)
		require.NoError(t, err)
		require.NotNil(t, byTx)
		assert.Equal(t, deal.ID, byTx.ID)
	})

	t.Run("replay is rejected without a second row", func(t *testing.T) {
		_, err := store.RecordDeal(ctx, input)
		assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)

		deals, err := store.GetRecentDeals(ctx, nft.ID, 10)
		require.NoError(t, err)
		assert.Len(t, deals, 1)
	})

	t.Run("unregistered parties are left unlinked", func(t *testing.T) {
		deal, err := store.RecordDeal(ctx, RecordDealInput{
			NftID:              nft.ID,
			OwnerAccountID:     "0.0.7002",
			BuyerAccountID:     "0.0.8888",
			Price:              "500",
			TransactionID:      "0.0.50@1700000001.000000001",
			ConsensusTimestamp: "1700000001000000001",
		})
		require.NoError(t, err)
		assert.NotNil(t, deal.OwnerID)
		assert.Nil(t, deal.BuyerID)
	})

	t.Run("recent deals newest first and range query", func(t *testing.T) {
		deals, err := store.GetRecentDeals(ctx, nft.ID, 10)
		require.NoError(t, err)
		require.Len(t, deals, 2)
		assert.Equal(t, "500", deals[0].Price)
		assert.Equal(t, "300", deals[1].Price)

		ranged, err := store.GetDealsForNft(ctx, nft.ID, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
		require.NoError(t, err)
		require.Len(t, ranged, 2)
		assert.Equal(t, "300", ranged[0].Price)

		empty, err := store.GetDealsForNft(ctx, nft.ID, time.Now().Add(time.Hour), time.Now().Add(2*time.Hour))
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("unknown nft", func(t *testing.T) {
		_, err := store.RecordDeal(ctx, RecordDealInput{NftID: -1, TransactionID: "0.0.1@1.1"})
		assert.ErrorIs(t, err, domain.ErrNftNotFound)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		got, err := store.GetDealByTransactionID(ctx, "0.0.1@9.9")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testUsers(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("lookup by account id", func(t *testing.T) {
		user, err := store.GetUserByAccountID(ctx, "0.0.7002")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "buyer", *user.Username)

		missing, err := store.GetUserByAccountID(ctx, "0.0.404")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("lookup by evm address is case insensitive", func(t *testing.T) {
		user, err := store.GetUserByEVMAddress(ctx, "0x0000000000000000000000000000000000001B5A")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "0.0.7002", *user.AccountID)
	})

	t.Run("evm address is back-filled only once", func(t *testing.T) {
		require.NoError(t, store.SetUserEVMAddress(ctx, "0.0.7001", "0xABCDEF0000000000000000000000000000000001"))
		require.NoError(t, store.SetUserEVMAddress(ctx, "0.0.7001", "0x1111111111111111111111111111111111111111"))

		user, err := store.GetUserByAccountID(ctx, "0.0.7001")
		require.NoError(t, err)
		assert.Equal(t, "0xabcdef0000000000000000000000000000000001", *user.EvmAddress)
	})

	t.Run("bulk lookups", func(t *testing.T) {
		byAccount, err := store.GetUsersByAccountIDs(ctx, []string{"0.0.7002", "0.0.7003", "0.0.404"})
		require.NoError(t, err)
		assert.Len(t, byAccount, 2)

		byEVM, err := store.GetUsersByEVMAddresses(ctx, []string{"0x0000000000000000000000000000000000001B5A"})
		require.NoError(t, err)
		assert.Contains(t, byEVM, "0x0000000000000000000000000000000000001b5a")
	})
}

// RunStoreTests runs the store test suite against a Store produced by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(t *testing.T, store Store)
	}{
		{"UpsertNft", testUpsertNft},
		{"Collections", testCollections},
		{"UpdateListing", testUpdateListing},
		{"ListNfts", testListNfts},
		{"ListNftsOrder", testListNftsOrder},
		{"GetExpiredListings", testGetExpiredListings},
		{"RecordDeal", testRecordDeal},
		{"Users", testUsers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, initDB(t))
		})
	}
}
