package workflows

import (
	"time"

	"go.temporal.io/sdk/workflow"

	"github.com/sphera-world/market-engine/internal/jobs"
)

// WorkerMarket defines the workflows run by the market worker
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_market.go -package=mocks -mock_names=WorkerMarket=MockMarketWorker
type WorkerMarket interface {
	// MarketJobWorkflow waits out the job's delay, then runs the job under its policy
	MarketJobWorkflow(ctx workflow.Context, input jobs.Input) error
}

// WorkerMarketConfig holds the workflow settings of the market worker
type WorkerMarketConfig struct {
	// FailureEventTimeout bounds one attempt to publish a job failure event
	FailureEventTimeout time.Duration
	// FailureEventAttempts is the number of attempts to publish a job failure event
	FailureEventAttempts int32
}

// workerMarket is the concrete implementation of WorkerMarket
type workerMarket struct {
	config   WorkerMarketConfig
	executor Executor
}

// NewWorkerMarket creates a new market worker instance
func NewWorkerMarket(executor Executor, config WorkerMarketConfig) WorkerMarket {
	if config.FailureEventTimeout <= 0 {
		config.FailureEventTimeout = 10 * time.Second
	}
	if config.FailureEventAttempts <= 0 {
		config.FailureEventAttempts = 3
	}
	return &workerMarket{
		config:   config,
		executor: executor,
	}
}
