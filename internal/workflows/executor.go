package workflows

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"
	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/adapter"
	"github.com/sphera-world/market-engine/internal/deal"
	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/listing"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/messaging"
	"github.com/sphera-world/market-engine/internal/metrics"
)

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_market.go -package=mocks -mock_names=Executor=MockMarketExecutor
type Executor interface {
	// ExpireListing unlists an expired listing on the contract and in the cache
	ExpireListing(ctx context.Context, job domain.ExpireListingJob) error

	// DeleteBid deletes a bid on the contract
	DeleteBid(ctx context.Context, job domain.DeleteBidJob) error

	// VerifyDeal verifies a claimed bid acceptance and records the deal
	VerifyDeal(ctx context.Context, claim domain.VerifyDealJob) error

	// PublishJobFailure reports a job that exhausted its attempts
	PublishJobFailure(ctx context.Context, event messaging.JobFailureEvent) error
}

// executor is the concrete implementation of Executor
type executor struct {
	listing   listing.Manager
	verifier  deal.Verifier
	publisher messaging.Publisher
	activity  adapter.Activity
	clock     adapter.Clock
}

// NewExecutor creates a new executor instance
func NewExecutor(
	listingManager listing.Manager,
	verifier deal.Verifier,
	publisher messaging.Publisher,
	activity adapter.Activity,
	clock adapter.Clock,
) Executor {
	return &executor{
		listing:   listingManager,
		verifier:  verifier,
		publisher: publisher,
		activity:  activity,
		clock:     clock,
	}
}

// ExpireListing unlists an expired listing
func (e *executor) ExpireListing(ctx context.Context, job domain.ExpireListingJob) error {
	return e.run(ctx, domain.JobKindExpireListing, func() error {
		return e.listing.HandleExpireListing(ctx, job)
	})
}

// DeleteBid deletes a bid on the contract
func (e *executor) DeleteBid(ctx context.Context, job domain.DeleteBidJob) error {
	return e.run(ctx, domain.JobKindDeleteBid, func() error {
		return e.listing.HandleDeleteBid(ctx, job)
	})
}

// VerifyDeal verifies a claimed bid acceptance. A deal recorded by an earlier attempt counts as success.
func (e *executor) VerifyDeal(ctx context.Context, claim domain.VerifyDealJob) error {
	return e.run(ctx, domain.JobKindVerifyDeal, func() error {
		_, err := e.verifier.Verify(ctx, claim)
		if errors.Is(err, domain.ErrAlreadyProcessed) {
			logger.InfoCtx(ctx, "Deal already recorded", zap.String("transactionId", claim.TransactionID))
			return nil
		}
		return err
	})
}

// PublishJobFailure stamps the event and publishes it
func (e *executor) PublishJobFailure(ctx context.Context, event messaging.JobFailureEvent) error {
	if e.publisher == nil {
		logger.WarnCtx(ctx, "No publisher configured, dropping job failure event", zap.String("jobId", event.JobID))
		return nil
	}

	now := e.clock.Now()
	event.OccurredAt = now
	event.EventID = ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()

	if err := e.publisher.PublishJobFailure(ctx, event); err != nil {
		return domain.Transient(err)
	}

	logger.InfoCtx(ctx, "Job failure published",
		zap.String("eventId", event.EventID),
		zap.String("jobId", event.JobID),
		zap.String("kind", string(event.Kind)))
	return nil
}

// run executes a job handler, recording metrics and classifying its error for the retry policy
func (e *executor) run(ctx context.Context, kind domain.JobKind, handler func() error) error {
	start := e.clock.Now()
	err := handler()
	metrics.JobDuration.WithLabelValues(string(kind)).Observe(e.clock.Since(start).Seconds())

	if err == nil {
		metrics.JobExecutions.WithLabelValues(string(kind), metrics.OutcomeSuccess).Inc()
		return nil
	}

	exec := e.activity.Execution(ctx)
	fields := []zap.Field{
		zap.String("kind", string(kind)),
		zap.String("workflowId", exec.WorkflowID),
		zap.String("runId", exec.RunID),
		zap.Int32("attempt", exec.Attempt),
		zap.Error(err),
	}

	if !domain.Retryable(err) {
		metrics.JobExecutions.WithLabelValues(string(kind), metrics.OutcomeRejected).Inc()
		logger.WarnCtx(ctx, "Job rejected", fields...)
		return temporal.NewNonRetryableApplicationError(err.Error(), errorType(err), err)
	}

	metrics.JobExecutions.WithLabelValues(string(kind), metrics.OutcomeFailed).Inc()
	logger.ErrorCtx(ctx, err, fields...)
	return err
}

// errorType names the application error after the market error code when there is one
func errorType(err error) string {
	var marketErr *domain.MarketError
	if errors.As(err, &marketErr) {
		return marketErr.Code
	}
	switch {
	case errors.Is(err, domain.ErrValidationFailure):
		return "VALIDATION_FAILURE"
	case errors.Is(err, domain.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict):
		return "CONFLICT"
	case errors.Is(err, domain.ErrLedgerRejection):
		return "LEDGER_REJECTION"
	}
	return "UNKNOWN"
}
