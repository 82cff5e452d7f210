package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sphera-world/market-engine/internal/adapter"
	"github.com/sphera-world/market-engine/internal/aggregator"
	"github.com/sphera-world/market-engine/internal/config"
	"github.com/sphera-world/market-engine/internal/deal"
	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/jobs"
	"github.com/sphera-world/market-engine/internal/listing"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/metadata"
	"github.com/sphera-world/market-engine/internal/providers/hedera"
	"github.com/sphera-world/market-engine/internal/providers/jetstream"
	temporal "github.com/sphera-world/market-engine/internal/providers/temporal"
	"github.com/sphera-world/market-engine/internal/store"
	"github.com/sphera-world/market-engine/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerMarketConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Service:         "worker-market",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Worker Market")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Hedera.HTTPTimeout)

	// Initialize ledger clients
	mirror := hedera.NewMirror(cfg.Hedera.MirrorURL, httpClient)
	indexer := hedera.NewIndexer(cfg.Hedera.IndexerURL, cfg.Hedera.IndexerAPIKey, httpClient)
	relayClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Hedera.RelayURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial JSON-RPC relay", zap.Error(err), zap.String("relay_url", cfg.Hedera.RelayURL))
	}
	defer relayClient.Close()
	contract, err := hedera.NewContract(relayClient, hedera.ContractConfig{
		ContractID:         cfg.Hedera.ContractID,
		OperatorPrivateKey: cfg.Hedera.OperatorPrivateKey,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create contract client", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to JSON-RPC relay", zap.String("contract_id", cfg.Hedera.ContractID))

	// The aggregator resolves accounts for the listing manager and the deal verifier
	agg := aggregator.NewAggregator(
		aggregator.Config{
			ContractID:           cfg.Hedera.ContractID,
			TrashCollectorID:     cfg.Hedera.TrashCollectorID,
			ValidatedCollections: domain.ParseValidatedCollections(cfg.Hedera.ValidatedCollections),
			Concurrency:          cfg.Worker.WorkerPoolSize,
		},
		dataStore,
		indexer,
		mirror,
		contract,
		metadata.NewResolver(cfg.IPFS.Gateway, httpClient),
	)
	defer agg.Close()

	// Connect to Temporal
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	queue := jobs.NewQueue(jobs.Config{
		TaskQueue:         cfg.Temporal.MarketTaskQueue,
		ListingTimeout:    cfg.Jobs.ListingTimeout,
		DealInitialDelay:  cfg.Jobs.DealInitialDelay,
		DealRetryInterval: cfg.Jobs.DealRetryInterval,
		DealMaxAttempts:   cfg.Jobs.DealMaxAttempts,
		DealTimeout:       cfg.Jobs.DealTimeout,
	}, temporalClient)

	// Connect to NATS JetStream for job failure events
	publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		StreamMaxAge:   cfg.NATS.StreamMaxAge,
		SubjectPrefix:  cfg.NATS.FailureSubject,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("subject", cfg.NATS.FailureSubject))

	listingManager := listing.NewManager(dataStore, queue, contract, agg, clock)
	verifier := deal.NewVerifier(dataStore, mirror, agg)
	executor := workflows.NewExecutor(listingManager, verifier, publisher, adapter.NewActivity(), clock)

	// Create Temporal worker
	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.MarketTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors: []interceptor.WorkerInterceptor{
				temporal.NewSentryActivityInterceptor(),
			},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("taskQueue", cfg.Temporal.MarketTaskQueue))

	workerMarket := workflows.NewWorkerMarket(executor, workflows.WorkerMarketConfig{
		FailureEventTimeout:  cfg.Jobs.FailureEventTimeout,
		FailureEventAttempts: cfg.Jobs.FailureEventAttempts,
	})

	// Register workflows
	temporalWorker.RegisterWorkflowWithOptions(workerMarket.MarketJobWorkflow, workflow.RegisterOptions{
		Name: jobs.WorkflowName,
	})
	logger.InfoCtx(ctx, "Registered workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.ExpireListing)
	temporalWorker.RegisterActivity(executor.DeleteBid)
	temporalWorker.RegisterActivity(executor.VerifyDeal)
	temporalWorker.RegisterActivity(executor.PublishJobFailure)
	logger.InfoCtx(ctx, "Registered activities")

	// Start worker
	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down worker...")
	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
