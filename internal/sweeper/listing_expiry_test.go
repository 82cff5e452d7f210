package sweeper_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/mocks"
	"github.com/sphera-world/market-engine/internal/store"
	"github.com/sphera-world/market-engine/internal/store/schema"
	"github.com/sphera-world/market-engine/internal/sweeper"
)

func TestMain(m *testing.M) {
	_ = logger.Initialize(logger.Config{Debug: true})
	os.Exit(m.Run())
}

var sweepTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type testSweeper struct {
	store   *mocks.MockStore
	queue   *mocks.MockQueue
	clock   *mocks.MockClock
	sweeper sweeper.ListingExpirySweeper
}

func setupTestSweeper(t *testing.T, config sweeper.ListingExpirySweeperConfig) *testSweeper {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ts := &testSweeper{
		store: mocks.NewMockStore(ctrl),
		queue: mocks.NewMockQueue(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
	ts.clock.EXPECT().Now().Return(sweepTime).AnyTimes()
	ts.clock.EXPECT().Since(gomock.Any()).Return(time.Millisecond).AnyTimes()
	ts.sweeper = sweeper.NewListingExpirySweeper(config, ts.store, ts.queue, ts.clock)
	return ts
}

func strPtr(s string) *string {
	return &s
}

func expired(nftID int64, serial string, jobID *string) store.ExpiredListing {
	return store.ExpiredListing{
		NftID:               nftID,
		ListingID:           nftID + 100,
		TokenID:             "0.0.100",
		SerialNumber:        serial,
		JobID:               jobID,
		ListingEndTimestamp: sweepTime.Add(-time.Hour),
	}
}

func listedNft(nftID int64, serial string, jobID *string) *schema.Nft {
	end := sweepTime.Add(-time.Hour)
	return &schema.Nft{
		ID:           nftID,
		TokenID:      "0.0.100",
		SerialNumber: serial,
		Listing: &schema.NftMarketListing{
			ID:                  nftID + 100,
			IsListed:            true,
			ListingEndTimestamp: &end,
			JobID:               jobID,
		},
	}
}

func TestSweepOnce_NoExpiredListings(t *testing.T) {
	ts := setupTestSweeper(t, sweeper.ListingExpirySweeperConfig{})
	ts.store.EXPECT().GetExpiredListings(gomock.Any(), sweepTime, 100).Return(nil, nil)

	n, err := ts.sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSweepOnce_StoreFailure(t *testing.T) {
	ts := setupTestSweeper(t, sweeper.ListingExpirySweeperConfig{BatchSize: 10})
	ts.store.EXPECT().GetExpiredListings(gomock.Any(), sweepTime, 10).Return(nil, errors.New("connection refused"))

	_, err := ts.sweeper.SweepOnce(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

func TestSweepOnce_ReenqueuesListingWithoutJob(t *testing.T) {
	ts := setupTestSweeper(t, sweeper.ListingExpirySweeperConfig{})
	ts.store.EXPECT().GetExpiredListings(gomock.Any(), sweepTime, 100).
		Return([]store.ExpiredListing{expired(1, "1", nil)}, nil)
	ts.store.EXPECT().GetNft(gomock.Any(), "0.0.100", "1").Return(listedNft(1, "1", nil), nil)
	ts.queue.EXPECT().
		Enqueue(gomock.Any(), domain.NewExpireListingJob(domain.EntityID{Num: 100}, "1"), time.Duration(0)).
		Return("market-timer-new", nil)
	ts.store.EXPECT().
		UpdateListing(gomock.Any(), int64(1), store.ListingUpdate{JobID: strPtr("market-timer-new")}).
		Return(&schema.NftMarketListing{}, nil)

	n, err := ts.sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSweepOnce_JobStates(t *testing.T) {
	t.Run("finished job is replaced", func(t *testing.T) {
		ts := setupTestSweeper(t, sweeper.ListingExpirySweeperConfig{})
		old := strPtr("market-timer-old")
		ts.store.EXPECT().GetExpiredListings(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]store.ExpiredListing{expired(1, "1", old)}, nil)
		ts.queue.EXPECT().IsActive(gomock.Any(), "market-timer-old").Return(false, nil)
		ts.store.EXPECT().GetNft(gomock.Any(), "0.0.100", "1").Return(listedNft(1, "1", old), nil)
		ts.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), time.Duration(0)).Return("market-timer-new", nil)
		ts.store.EXPECT().UpdateListing(gomock.Any(), int64(1), gomock.Any()).Return(&schema.NftMarketListing{}, nil)

		n, err := ts.sweeper.SweepOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("active job is left alone", func(t *testing.T) {
		ts := setupTestSweeper(t, sweeper.ListingExpirySweeperConfig{})
		ts.store.EXPECT().GetExpiredListings(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]store.ExpiredListing{expired(1, "1", strPtr("market-timer-running"))}, nil)
		ts.queue.EXPECT().IsActive(gomock.Any(), "market-timer-running").Return(true, nil)

		n, err := ts.sweeper.SweepOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("lookup failure skips the listing", func(t *testing.T) {
		ts := setupTestSweeper(t, sweeper.ListingExpirySweeperConfig{})
		ts.store.EXPECT().GetExpiredListings(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]store.ExpiredListing{expired(1, "1", strPtr("market-timer-unknown"))}, nil)
		ts.queue.EXPECT().IsActive(gomock.Any(), "market-timer-unknown").Return(false, errors.New("temporal unavailable"))

		n, err := ts.sweeper.SweepOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func TestSweepOnce_ListingChangedMeanwhile(t *testing.T) {
	tests := []struct {
		name string
		nft  *schema.Nft
	}{
		{name: "nft removed", nft: nil},
		{name: "relisted with a new job", nft: listedNft(1, "1", strPtr("market-timer-relist"))},
		{name: "unlisted", nft: func() *schema.Nft {
			n := listedNft(1, "1", nil)
			n.Listing.IsListed = false
			return n
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := setupTestSweeper(t, sweeper.ListingExpirySweeperConfig{})
			ts.store.EXPECT().GetExpiredListings(gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]store.ExpiredListing{expired(1, "1", nil)}, nil)
			ts.store.EXPECT().GetNft(gomock.Any(), "0.0.100", "1").Return(tt.nft, nil)

			n, err := ts.sweeper.SweepOnce(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 0, n)
		})
	}
}

func TestSweepOnce_ContinuesAfterFailure(t *testing.T) {
	ts := setupTestSweeper(t, sweeper.ListingExpirySweeperConfig{})
	ts.store.EXPECT().GetExpiredListings(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]store.ExpiredListing{expired(1, "1", nil), expired(2, "2", nil)}, nil)

	ts.store.EXPECT().GetNft(gomock.Any(), "0.0.100", "1").Return(listedNft(1, "1", nil), nil)
	ts.queue.EXPECT().
		Enqueue(gomock.Any(), domain.NewExpireListingJob(domain.EntityID{Num: 100}, "1"), time.Duration(0)).
		Return("", errors.New("temporal unavailable"))

	ts.store.EXPECT().GetNft(gomock.Any(), "0.0.100", "2").Return(listedNft(2, "2", nil), nil)
	ts.queue.EXPECT().
		Enqueue(gomock.Any(), domain.NewExpireListingJob(domain.EntityID{Num: 100}, "2"), time.Duration(0)).
		Return("market-timer-2", nil)
	ts.store.EXPECT().UpdateListing(gomock.Any(), int64(2), store.ListingUpdate{JobID: strPtr("market-timer-2")}).
		Return(&schema.NftMarketListing{}, nil)

	n, err := ts.sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStart_InvalidSchedule(t *testing.T) {
	ts := setupTestSweeper(t, sweeper.ListingExpirySweeperConfig{Schedule: "not a schedule"})

	err := ts.sweeper.Start(context.Background())
	assert.ErrorContains(t, err, "invalid sweep schedule")
}

func TestStartStop(t *testing.T) {
	ts := setupTestSweeper(t, sweeper.ListingExpirySweeperConfig{Schedule: "@every 1h"})
	assert.Equal(t, "listing-expiry-sweeper", ts.sweeper.Name())

	done := make(chan error, 1)
	go func() {
		done <- ts.sweeper.Start(context.Background())
	}()

	// Stop is a no-op until Start has marked the sweeper running
	var startErr error
	require.Eventually(t, func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_ = ts.sweeper.Stop(ctx)
		select {
		case startErr = <-done:
			return true
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
	assert.NoError(t, startErr)
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	ts := setupTestSweeper(t, sweeper.ListingExpirySweeperConfig{Schedule: "@every 1h"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- ts.sweeper.Start(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}
