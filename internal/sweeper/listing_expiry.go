package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/adapter"
	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/jobs"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/metrics"
	"github.com/sphera-world/market-engine/internal/store"
)

// DefaultListingExpirySchedule runs the sweep once a minute
const DefaultListingExpirySchedule = "@every 1m"

// ListingExpirySweeperConfig holds configuration for the listing expiry sweeper
type ListingExpirySweeperConfig struct {
	Schedule  string // cron spec, e.g. "@every 1m"
	BatchSize int    // expired listings read per sweep
}

// ListingExpirySweeper re-enqueues expiry jobs for listings whose end passed
// without one, for instance because the expire job failed terminally or the
// workflow was lost.
//
//go:generate mockgen -source=listing_expiry.go -destination=../mocks/sweeper.go -package=mocks -mock_names=ListingExpirySweeper=MockListingExpirySweeper
type ListingExpirySweeper interface {
	// Start runs sweeps on the configured schedule and blocks until ctx is
	// canceled or Stop is called
	Start(ctx context.Context) error
	// Stop waits for an in-flight sweep to finish
	Stop(ctx context.Context) error
	Name() string

	// SweepOnce runs a single sweep and returns the number of listings re-enqueued
	SweepOnce(ctx context.Context) (int, error)
}

type listingExpirySweeper struct {
	config    ListingExpirySweeperConfig
	store     store.Store
	queue     jobs.Queue
	clock     adapter.Clock
	cron      *cron.Cron
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewListingExpirySweeper creates a new listing expiry sweeper
func NewListingExpirySweeper(config ListingExpirySweeperConfig, st store.Store, queue jobs.Queue, clock adapter.Clock) ListingExpirySweeper {
	if config.Schedule == "" {
		config.Schedule = DefaultListingExpirySchedule
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	return &listingExpirySweeper{
		config:    config,
		store:     st,
		queue:     queue,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *listingExpirySweeper) Name() string {
	return "listing-expiry-sweeper"
}

// Start schedules the sweep and blocks until the context is canceled or Stop is called
func (s *listingExpirySweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}

	s.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := s.cron.AddFunc(s.config.Schedule, func() {
		if _, err := s.SweepOnce(ctx); err != nil {
			logger.ErrorCtx(ctx, err)
		}
	})
	if err != nil {
		s.running.Store(false)
		return fmt.Errorf("invalid sweep schedule %q: %w", s.config.Schedule, err)
	}
	defer close(s.stoppedCh)

	logger.InfoCtx(ctx, "Starting listing expiry sweeper",
		zap.String("schedule", s.config.Schedule),
		zap.Int("batch_size", s.config.BatchSize))
	s.cron.Start()

	select {
	case <-ctx.Done():
		logger.InfoCtx(ctx, "Listing expiry sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
	case <-s.stopChan:
		logger.InfoCtx(ctx, "Listing expiry sweeper stop requested")
	}

	// Wait for a running sweep to finish
	<-s.cron.Stop().Done()
	s.running.Store(false)
	return nil
}

// Stop gracefully stops the sweeper with timeout support
func (s *listingExpirySweeper) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping listing expiry sweeper")
	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Listing expiry sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Listing expiry sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// SweepOnce re-enqueues expiry jobs for expired listings with no job id or an unknown job
func (s *listingExpirySweeper) SweepOnce(ctx context.Context) (int, error) {
	startTime := s.clock.Now()

	expired, err := s.store.GetExpiredListings(ctx, startTime, s.config.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to get expired listings: %w", err)
	}
	if len(expired) == 0 {
		logger.DebugCtx(ctx, "No expired listings to sweep")
		return 0, nil
	}

	swept := 0
	for _, l := range expired {
		if ctx.Err() != nil {
			return swept, ctx.Err()
		}
		if !s.needsJob(ctx, l) {
			continue
		}
		ok, err := s.reenqueue(ctx, l)
		if err != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("tokenId", l.TokenID),
				zap.String("serialNumber", l.SerialNumber))
			continue
		}
		if !ok {
			continue
		}
		swept++
		metrics.SweptListings.Inc()
	}

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("expired", len(expired)),
		zap.Int("reenqueued", swept))
	return swept, nil
}

// needsJob reports whether an expired listing lost its expiry job; queue lookup failures fail open
func (s *listingExpirySweeper) needsJob(ctx context.Context, l store.ExpiredListing) bool {
	if l.JobID == nil {
		return true
	}

	active, err := s.queue.IsActive(ctx, *l.JobID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to look up listing job, skipping",
			zap.String("jobId", *l.JobID),
			zap.Error(err))
		return false
	}
	return !active
}

// reenqueue schedules an immediate expiry and stores its job id; false means the listing changed meanwhile
func (s *listingExpirySweeper) reenqueue(ctx context.Context, l store.ExpiredListing) (bool, error) {
	token, err := domain.ParseEntityID(l.TokenID)
	if err != nil {
		return false, err
	}

	// Re-read right before mutating; the owner may have relisted or unlisted meanwhile
	nft, err := s.store.GetNft(ctx, l.TokenID, l.SerialNumber)
	if err != nil {
		return false, fmt.Errorf("failed to get nft: %w", err)
	}
	if nft == nil || nft.Listing == nil || !nft.Listing.IsListed || !sameJob(nft.Listing.JobID, l.JobID) {
		return false, nil
	}

	jobID, err := s.queue.Enqueue(ctx, domain.NewExpireListingJob(token, l.SerialNumber), 0)
	if err != nil {
		return false, fmt.Errorf("failed to enqueue expiry: %w", err)
	}
	if _, err := s.store.UpdateListing(ctx, l.NftID, store.ListingUpdate{JobID: &jobID}); err != nil {
		return false, fmt.Errorf("failed to save job id: %w", err)
	}

	logger.InfoCtx(ctx, "Re-enqueued listing expiry",
		zap.String("tokenId", l.TokenID),
		zap.String("serialNumber", l.SerialNumber),
		zap.String("jobId", jobID))
	return true, nil
}

func sameJob(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
