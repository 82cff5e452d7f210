package workflows

import (
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/jobs"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/messaging"
)

// MarketJobWorkflow runs one market job.
// It sleeps for the job's delay on a durable timer, then dispatches to the activity of the job kind.
// A job exhausting its attempts publishes a failure event before the workflow fails.
func (w *workerMarket) MarketJobWorkflow(ctx workflow.Context, input jobs.Input) error {
	jobID := input.JobID
	if jobID == "" {
		jobID = workflow.GetInfo(ctx).WorkflowExecution.ID
	}

	logger.InfoWf(ctx, "Starting market job",
		zap.String("jobId", jobID),
		zap.String("kind", string(input.Job.Kind)),
		zap.Duration("delay", input.Delay))

	if err := input.Job.Validate(); err != nil {
		logger.WarnWf(ctx, "Invalid market job", zap.String("jobId", jobID), zap.Error(err))
		return temporal.NewNonRetryableApplicationError(err.Error(), "INVALID_JOB", err)
	}

	// 1. Wait out the delay; cancelling the job here ends it quietly
	if input.Delay > 0 {
		if err := workflow.Sleep(ctx, input.Delay); err != nil {
			if temporal.IsCanceledError(err) {
				logger.InfoWf(ctx, "Market job cancelled before running", zap.String("jobId", jobID))
				return nil
			}
			return err
		}
	}

	// 2. Run under the job's policy
	activityCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: input.Policy.Timeout,
		RetryPolicy:         retryPolicy(input.Policy),
	})

	var err error
	switch input.Job.Kind {
	case domain.JobKindExpireListing:
		err = workflow.ExecuteActivity(activityCtx, w.executor.ExpireListing, *input.Job.ExpireListing).Get(activityCtx, nil)
	case domain.JobKindDeleteBid:
		err = workflow.ExecuteActivity(activityCtx, w.executor.DeleteBid, *input.Job.DeleteBid).Get(activityCtx, nil)
	case domain.JobKindVerifyDeal:
		err = workflow.ExecuteActivity(activityCtx, w.executor.VerifyDeal, *input.Job.VerifyDeal).Get(activityCtx, nil)
	default:
		return temporal.NewNonRetryableApplicationError(fmt.Sprintf("unknown job kind %q", input.Job.Kind), "INVALID_JOB", nil)
	}

	if err == nil {
		logger.InfoWf(ctx, "Market job completed", zap.String("jobId", jobID))
		return nil
	}
	if temporal.IsCanceledError(err) {
		logger.InfoWf(ctx, "Market job cancelled while running", zap.String("jobId", jobID))
		return nil
	}

	// 3. Terminal failure
	logger.ErrorWf(ctx, fmt.Errorf("market job failed: %w", err), zap.String("jobId", jobID))
	w.publishFailure(ctx, jobID, input.Job, err)
	return err
}

// publishFailure reports a failed job; a publishing failure is logged and does not mask the job error
func (w *workerMarket) publishFailure(ctx workflow.Context, jobID string, job domain.Job, jobErr error) {
	publishCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: w.config.FailureEventTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: w.config.FailureEventAttempts,
		},
	})

	event := messaging.JobFailureEvent{
		JobID:     jobID,
		Kind:      job.Kind,
		Job:       job,
		Error:     jobErr.Error(),
		Retryable: !nonRetryable(jobErr),
	}
	if err := workflow.ExecuteActivity(publishCtx, w.executor.PublishJobFailure, event).Get(publishCtx, nil); err != nil {
		logger.WarnWf(ctx, "Failed to publish job failure", zap.String("jobId", jobID), zap.Error(err))
	}
}

// retryPolicy builds a fixed-interval policy; jobs without an interval run once
func retryPolicy(p jobs.Policy) *temporal.RetryPolicy {
	policy := &temporal.RetryPolicy{
		MaximumAttempts:    p.MaxAttempts,
		BackoffCoefficient: 1.0,
	}
	if p.RetryInterval > 0 {
		policy.InitialInterval = p.RetryInterval
		policy.MaximumInterval = p.RetryInterval
	}
	return policy
}

func nonRetryable(err error) bool {
	var appErr *temporal.ApplicationError
	return errors.As(err, &appErr) && appErr.NonRetryable()
}
