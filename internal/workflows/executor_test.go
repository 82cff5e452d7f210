package workflows_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/sphera-world/market-engine/internal/adapter"
	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/messaging"
	"github.com/sphera-world/market-engine/internal/mocks"
	"github.com/sphera-world/market-engine/internal/store/schema"
	"github.com/sphera-world/market-engine/internal/workflows"
)

type testExecutor struct {
	listing   *mocks.MockListingManager
	verifier  *mocks.MockDealVerifier
	publisher *mocks.MockPublisher
	activity  *mocks.MockActivity
	clock     *mocks.MockClock
	executor  workflows.Executor
}

func setupTestExecutor(t *testing.T) *testExecutor {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	te := &testExecutor{
		listing:   mocks.NewMockListingManager(ctrl),
		verifier:  mocks.NewMockDealVerifier(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		activity:  mocks.NewMockActivity(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
	te.clock.EXPECT().Now().Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()
	te.clock.EXPECT().Since(gomock.Any()).Return(time.Millisecond).AnyTimes()
	te.activity.EXPECT().Execution(gomock.Any()).Return(adapter.ActivityExecution{WorkflowID: "market-job-1", Attempt: 1}).AnyTimes()
	te.executor = workflows.NewExecutor(te.listing, te.verifier, te.publisher, te.activity, te.clock)
	return te
}

func expireJob() domain.ExpireListingJob {
	return *domain.NewExpireListingJob(domain.EntityID{Num: 100}, "1").ExpireListing
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

func assertNonRetryable(t *testing.T, err error) {
	t.Helper()
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, appErr.NonRetryable())
}

func TestExecutor_ExpireListing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		te := setupTestExecutor(t)
		te.listing.EXPECT().HandleExpireListing(gomock.Any(), expireJob()).Return(nil)

		assert.NoError(t, te.executor.ExpireListing(context.Background(), expireJob()))
	})

	t.Run("transient failure stays retryable", func(t *testing.T) {
		te := setupTestExecutor(t)
		te.listing.EXPECT().HandleExpireListing(gomock.Any(), gomock.Any()).Return(domain.Transient(errors.New("relay timeout")))

		err := te.executor.ExpireListing(context.Background(), expireJob())
		require.Error(t, err)
		var appErr *temporal.ApplicationError
		assert.False(t, errors.As(err, &appErr))
	})

	t.Run("missing nft is final", func(t *testing.T) {
		te := setupTestExecutor(t)
		te.listing.EXPECT().HandleExpireListing(gomock.Any(), gomock.Any()).Return(domain.ErrNftNotFound)

		err := te.executor.ExpireListing(context.Background(), expireJob())
		assertNonRetryable(t, err)

		var appErr *temporal.ApplicationError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "NFT_NOT_FOUND", appErr.Type())
	})
}

func TestExecutor_DeleteBid(t *testing.T) {
	te := setupTestExecutor(t)
	job := *domain.NewDeleteBidJob(domain.EntityID{Num: 100}, "1", "0x00000000000000000000000000000000000003e9").DeleteBid
	te.listing.EXPECT().HandleDeleteBid(gomock.Any(), job).Return(nil)

	assert.NoError(t, te.executor.DeleteBid(context.Background(), job))
}

func TestExecutor_VerifyDeal(t *testing.T) {
	t.Run("recorded", func(t *testing.T) {
		te := setupTestExecutor(t)
		te.verifier.EXPECT().Verify(gomock.Any(), claim()).Return(&schema.NftMarketDeal{ID: 1}, nil)

		assert.NoError(t, te.executor.VerifyDeal(context.Background(), claim()))
	})

	t.Run("already recorded counts as success", func(t *testing.T) {
		te := setupTestExecutor(t)
		te.verifier.EXPECT().Verify(gomock.Any(), claim()).Return(nil, domain.ErrAlreadyProcessed)

		assert.NoError(t, te.executor.VerifyDeal(context.Background(), claim()))
	})

	t.Run("mismatch is final", func(t *testing.T) {
		te := setupTestExecutor(t)
		te.verifier.EXPECT().Verify(gomock.Any(), claim()).Return(nil, domain.ErrEventMismatch)

		assertNonRetryable(t, te.executor.VerifyDeal(context.Background(), claim()))
	})

	t.Run("plain validation failure is final", func(t *testing.T) {
		te := setupTestExecutor(t)
		te.verifier.EXPECT().Verify(gomock.Any(), claim()).Return(nil, domain.Validation("no contract result"))

		err := te.executor.VerifyDeal(context.Background(), claim())
		assertNonRetryable(t, err)

		var appErr *temporal.ApplicationError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_FAILURE", appErr.Type())
	})
}

func TestExecutor_PublishJobFailure(t *testing.T) {
	t.Run("stamps and publishes", func(t *testing.T) {
		te := setupTestExecutor(t)
		te.publisher.EXPECT().
			PublishJobFailure(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event messaging.JobFailureEvent) error {
				assert.Len(t, event.EventID, 26)
				assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), event.OccurredAt)
				assert.Equal(t, "market-timer-1", event.JobID)
				return nil
			})

		err := te.executor.PublishJobFailure(context.Background(), messaging.JobFailureEvent{
			JobID: "market-timer-1",
			Kind:  domain.JobKindExpireListing,
		})
		assert.NoError(t, err)
	})

	t.Run("broker failure is retryable", func(t *testing.T) {
		te := setupTestExecutor(t)
		te.publisher.EXPECT().PublishJobFailure(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

		err := te.executor.PublishJobFailure(context.Background(), messaging.JobFailureEvent{JobID: "market-timer-1"})
		assert.ErrorIs(t, err, domain.ErrTransient)
	})
}
