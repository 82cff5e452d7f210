package executor_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphera-world/market-engine/internal/aggregator"
	"github.com/sphera-world/market-engine/internal/api/shared/dto"
	"github.com/sphera-world/market-engine/internal/api/shared/executor"
	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/listing"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/mocks"
	"github.com/sphera-world/market-engine/internal/ratelimit"
)

func TestMain(m *testing.M) {
	_ = logger.Initialize(logger.Config{Debug: true})
	os.Exit(m.Run())
}

var now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type testExecutor struct {
	aggregator *mocks.MockAggregator
	listing    *mocks.MockListingManager
	queue      *mocks.MockQueue
	limiter    *mocks.MockLimiter
	clock      *mocks.MockClock
	executor   executor.Executor
}

func setupTestExecutor(t *testing.T) *testExecutor {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	te := &testExecutor{
		aggregator: mocks.NewMockAggregator(ctrl),
		listing:    mocks.NewMockListingManager(ctrl),
		queue:      mocks.NewMockQueue(ctrl),
		limiter:    mocks.NewMockLimiter(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	te.clock.EXPECT().Now().Return(now).AnyTimes()
	te.executor = executor.NewExecutor(te.aggregator, te.listing, te.queue, te.limiter, te.clock)
	return te
}

func claim() domain.VerifyDealJob {
	return domain.VerifyDealJob{
		OwnerAccountID: "0.0.7001",
		BuyerAccountID: "0.0.7002",
		TransactionID:  "0.0.50@1700000000.123456789",
		Price:          "500",
		TokenID:        "0.0.100",
		SerialNumber:   "1",
	}
}

var caller = domain.Caller{UserID: 42, AccountID: "0.0.7002"}

func TestQueueDeal_Enqueues(t *testing.T) {
	te := setupTestExecutor(t)

	gomock.InOrder(
		te.limiter.EXPECT().Acquire(gomock.Any(), ratelimit.ActionAcceptBid, "42").Return(true, nil),
		te.queue.EXPECT().Enqueue(gomock.Any(), domain.NewVerifyDealJob(claim()), time.Duration(0)).
			Return("deal-0.0.50@1700000000.123456789", nil),
	)

	assert.NoError(t, te.executor.QueueDeal(context.Background(), caller, claim()))
}

func TestQueueDeal_RateLimited(t *testing.T) {
	te := setupTestExecutor(t)
	te.limiter.EXPECT().Acquire(gomock.Any(), ratelimit.ActionAcceptBid, "42").Return(false, nil)

	err := te.executor.QueueDeal(context.Background(), caller, claim())
	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestQueueDeal_FallsBackToAccountKey(t *testing.T) {
	te := setupTestExecutor(t)
	te.limiter.EXPECT().Acquire(gomock.Any(), ratelimit.ActionAcceptBid, "0.0.7002").Return(true, nil)
	te.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return("deal-x", nil)

	assert.NoError(t, te.executor.QueueDeal(context.Background(), domain.Caller{AccountID: "0.0.7002"}, claim()))
}

func TestQueueDeal_InvalidClaim(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.VerifyDealJob)
	}{
		{name: "malformed transaction id", mutate: func(c *domain.VerifyDealJob) { c.TransactionID = "0.0.50-1700000000" }},
		{name: "zero price", mutate: func(c *domain.VerifyDealJob) { c.Price = "0" }},
		{name: "non numeric serial", mutate: func(c *domain.VerifyDealJob) { c.SerialNumber = "first" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := setupTestExecutor(t)
			c := claim()
			tt.mutate(&c)

			// Neither the limiter nor the queue is touched
			err := te.executor.QueueDeal(context.Background(), caller, c)
			assert.ErrorIs(t, err, domain.ErrValidationFailure)
		})
	}
}

func TestQueueDeal_EnqueueFailure(t *testing.T) {
	te := setupTestExecutor(t)
	gomock.InOrder(
		te.limiter.EXPECT().Acquire(gomock.Any(), ratelimit.ActionAcceptBid, "42").Return(true, nil),
		te.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("temporal unavailable")),
		te.limiter.EXPECT().Release(gomock.Any(), ratelimit.ActionAcceptBid, "42").Return(nil),
	)

	err := te.executor.QueueDeal(context.Background(), caller, claim())
	assert.ErrorContains(t, err, "temporal unavailable")
}

func TestQueueDeal_EnqueueFailureKeepsErrorWhenReleaseFails(t *testing.T) {
	te := setupTestExecutor(t)
	te.limiter.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	te.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("temporal unavailable"))
	te.limiter.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	err := te.executor.QueueDeal(context.Background(), caller, claim())
	assert.ErrorContains(t, err, "temporal unavailable")
	assert.NotContains(t, err.Error(), "redis down")
}

func TestQueueDeal_LimiterFailure(t *testing.T) {
	te := setupTestExecutor(t)
	te.limiter.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))

	err := te.executor.QueueDeal(context.Background(), caller, claim())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRateLimited)
}

func TestSetMarketItems(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		te := setupTestExecutor(t)
		end := now.Add(2 * time.Hour)
		req := dto.MarketItemsRequest{
			Nfts:                []dto.MarketItem{{TokenID: "0.0.100", SerialNumber: "1"}},
			Price:               "5000000000",
			IsListed:            true,
			ListingEndTimestamp: end.UnixMilli(),
		}

		te.listing.EXPECT().
			SetListings(gomock.Any(), caller, []listing.Item{{TokenID: "0.0.100", SerialNumber: "1"}}, true, "5000000000", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Caller, _ []listing.Item, _ bool, _ string, got *time.Time) error {
				require.NotNil(t, got)
				assert.True(t, got.Equal(end))
				return nil
			})

		assert.NoError(t, te.executor.SetMarketItems(context.Background(), caller, req))
	})

	t.Run("unlist without end", func(t *testing.T) {
		te := setupTestExecutor(t)
		req := dto.MarketItemsRequest{Nfts: []dto.MarketItem{{TokenID: "0.0.100", SerialNumber: "1"}}}

		te.listing.EXPECT().
			SetListings(gomock.Any(), caller, gomock.Any(), false, "0", (*time.Time)(nil)).
			Return(nil)

		assert.NoError(t, te.executor.SetMarketItems(context.Background(), caller, req))
	})

	t.Run("negative price", func(t *testing.T) {
		te := setupTestExecutor(t)
		req := dto.MarketItemsRequest{
			Nfts:                []dto.MarketItem{{TokenID: "0.0.100", SerialNumber: "1"}},
			Price:               "-5",
			IsListed:            true,
			ListingEndTimestamp: now.Add(time.Hour).UnixMilli(),
		}

		err := te.executor.SetMarketItems(context.Background(), caller, req)
		assert.ErrorIs(t, err, domain.ErrValidationFailure)
	})
}

func TestGetMarketItemInfo_Reconciles(t *testing.T) {
	te := setupTestExecutor(t)
	end := now.Add(time.Hour).UnixMilli()
	info := &domain.MarketItemInfo{
		Owner:               "0x0000000000000000000000000000000000001b59",
		Price:               big.NewInt(5000000000),
		IsListed:            true,
		ListingEndTimestamp: &end,
	}
	te.listing.EXPECT().Reconcile(gomock.Any(), "0.0.100", "1").Return(info, nil)

	got, err := te.executor.GetMarketItemInfo(context.Background(), "0.0.100", "1")
	require.NoError(t, err)
	assert.Equal(t, info, got)
}

func TestGetPriceHistory_DefaultsToNow(t *testing.T) {
	te := setupTestExecutor(t)
	te.aggregator.EXPECT().GetPriceHistory(gomock.Any(), "0.0.100", "1", now.UnixMilli()).Return(nil, nil)

	got, err := te.executor.GetPriceHistory(context.Background(), "0.0.100", "1", 0)
	require.NoError(t, err)
	assert.NotNil(t, got.History)
	assert.Empty(t, got.History)
}

func TestGetNFTs_WrapsPage(t *testing.T) {
	te := setupTestExecutor(t)
	q := aggregator.NftQuery{IsMarketListed: true}
	te.aggregator.EXPECT().GetNFTs(gomock.Any(), (*domain.Caller)(nil), q).Return(domain.Page[domain.NftView]{
		Items:      []domain.NftView{{TokenID: "0.0.100", SerialNumber: "1"}},
		IsLastPage: true,
	}, nil)

	got, err := te.executor.GetNFTs(context.Background(), nil, q)
	require.NoError(t, err)
	assert.Len(t, got.Nfts, 1)
	assert.True(t, got.IsLastPage)
}

func TestGetAccountBids_PassesDirection(t *testing.T) {
	te := setupTestExecutor(t)
	p := domain.Pagination{Page: 2, PageSize: 5}
	te.aggregator.EXPECT().GetAccountBids(gomock.Any(), "0.0.7001", aggregator.BidsSent, p).
		Return(domain.Page[domain.BidView]{Items: []domain.BidView{}}, nil)

	got, err := te.executor.GetAccountBids(context.Background(), "0.0.7001", aggregator.BidsSent, p)
	require.NoError(t, err)
	assert.False(t, got.IsLastPage)
}

func TestGetEVMAddress_PropagatesError(t *testing.T) {
	te := setupTestExecutor(t)
	te.aggregator.EXPECT().ResolveEVMAddress(gomock.Any(), "0.0.404").Return("", domain.ErrUserNotRegistered)

	_, err := te.executor.GetEVMAddress(context.Background(), "0.0.404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
