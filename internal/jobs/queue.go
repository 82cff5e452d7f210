package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/providers/temporal"
)

const (
	// WorkflowName is the registered name of the workflow running every market job
	WorkflowName = "MarketJobWorkflow"

	listingJobPrefix = "market-timer-"
	dealJobPrefix    = "deal-"
)

// Policy is the execution policy of one job kind
type Policy struct {
	MaxAttempts   int32
	Timeout       time.Duration
	RetryInterval time.Duration
}

// Input is the workflow argument of a market job
type Input struct {
	JobID  string        `json:"jobId"`
	Job    domain.Job    `json:"job"`
	Delay  time.Duration `json:"delay"`
	Policy Policy        `json:"policy"`
}

// Config holds the queue settings
type Config struct {
	TaskQueue         string
	ListingTimeout    time.Duration
	DealInitialDelay  time.Duration
	DealRetryInterval time.Duration
	DealMaxAttempts   int32
	DealTimeout       time.Duration
}

// PolicyFor returns the execution policy of a job kind
func (c Config) PolicyFor(kind domain.JobKind) Policy {
	if kind == domain.JobKindVerifyDeal {
		return Policy{
			MaxAttempts:   c.DealMaxAttempts,
			Timeout:       c.DealTimeout,
			RetryInterval: c.DealRetryInterval,
		}
	}
	return Policy{MaxAttempts: 1, Timeout: c.ListingTimeout}
}

// Queue schedules delayed market jobs
//
//go:generate mockgen -source=queue.go -destination=../mocks/jobs_queue.go -package=mocks -mock_names=Queue=MockQueue
type Queue interface {
	// Enqueue schedules job to run after delay and returns its job id.
	// Deal jobs wait at least the configured initial delay.
	Enqueue(ctx context.Context, job domain.Job, delay time.Duration) (string, error)

	// Cancel cancels a scheduled job; an unknown or finished job is not an error
	Cancel(ctx context.Context, jobID string) error

	// IsActive reports whether the job is still scheduled or running
	IsActive(ctx context.Context, jobID string) (bool, error)
}

type queue struct {
	config       Config
	orchestrator temporal.TemporalOrchestrator
}

// NewQueue creates a Temporal backed job queue
func NewQueue(cfg Config, orchestrator temporal.TemporalOrchestrator) Queue {
	return &queue{config: cfg, orchestrator: orchestrator}
}

// JobID returns the job id of a job. Listing timers get a fresh id, deals are keyed by transaction.
func JobID(job domain.Job) string {
	if job.Kind == domain.JobKindVerifyDeal && job.VerifyDeal != nil {
		return dealJobPrefix + job.VerifyDeal.TransactionID
	}
	return listingJobPrefix + uuid.New().String()
}

// Enqueue schedules job to run after delay
func (q *queue) Enqueue(ctx context.Context, job domain.Job, delay time.Duration) (string, error) {
	if err := job.Validate(); err != nil {
		return "", err
	}
	if delay < 0 {
		delay = 0
	}
	if job.Kind == domain.JobKindVerifyDeal && delay < q.config.DealInitialDelay {
		delay = q.config.DealInitialDelay
	}

	jobID := JobID(job)
	input := Input{
		JobID:  jobID,
		Job:    job,
		Delay:  delay,
		Policy: q.config.PolicyFor(job.Kind),
	}
	options := client.StartWorkflowOptions{
		ID:                    jobID,
		TaskQueue:             q.config.TaskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
	}

	run, err := q.orchestrator.ExecuteWorkflow(ctx, options, WorkflowName, input)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			logger.InfoCtx(ctx, "Job already scheduled", zap.String("jobId", jobID))
			return jobID, nil
		}
		return "", domain.Transient(fmt.Errorf("failed to schedule %s job: %w", job.Kind, err))
	}

	logger.InfoCtx(ctx, "Job scheduled",
		zap.String("jobId", jobID),
		zap.String("runId", run.GetRunID()),
		zap.String("kind", string(job.Kind)),
		zap.Duration("delay", delay))

	return jobID, nil
}

// Cancel cancels a scheduled job
func (q *queue) Cancel(ctx context.Context, jobID string) error {
	err := q.orchestrator.CancelWorkflow(ctx, jobID, "")
	if err != nil {
		var notFound *serviceerror.NotFound
		if errors.As(err, &notFound) {
			logger.DebugCtx(ctx, "Job to cancel is not running", zap.String("jobId", jobID))
			return nil
		}
		return domain.Transient(fmt.Errorf("failed to cancel job %s: %w", jobID, err))
	}

	logger.InfoCtx(ctx, "Job cancelled", zap.String("jobId", jobID))
	return nil
}

// IsActive reports whether the job is still scheduled or running
func (q *queue) IsActive(ctx context.Context, jobID string) (bool, error) {
	resp, err := q.orchestrator.DescribeWorkflowExecution(ctx, jobID, "")
	if err != nil {
		var notFound *serviceerror.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, domain.Transient(fmt.Errorf("failed to describe job %s: %w", jobID, err))
	}

	info := resp.GetWorkflowExecutionInfo()
	return info.GetStatus() == enums.WORKFLOW_EXECUTION_STATUS_RUNNING, nil
}
