package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sphera-world/market-engine/internal/adapter"
	"github.com/sphera-world/market-engine/internal/config"
	"github.com/sphera-world/market-engine/internal/jobs"
	"github.com/sphera-world/market-engine/internal/logger"
	temporal "github.com/sphera-world/market-engine/internal/providers/temporal"
	"github.com/sphera-world/market-engine/internal/store"
	"github.com/sphera-world/market-engine/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	once       = flag.Bool("once", false, "Run a single sweep and exit")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Service:         "sweeper",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

	dataStore, err := openStore(cfg.Database)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to open database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Connect to Temporal to re-enqueue expiry jobs
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

	listingSweeper := sweeper.NewListingExpirySweeper(sweeper.ListingExpirySweeperConfig{
		Schedule:  cfg.ListingSweeper.Schedule,
		BatchSize: cfg.ListingSweeper.BatchSize,
	}, dataStore, queue, adapter.NewClock())

	if *once {
		n, err := listingSweeper.SweepOnce(ctx)
		if err != nil {
			logger.FatalCtx(ctx, "Sweep failed", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Sweep finished", zap.Int("requeued", n))
		return
	}

	logger.InfoCtx(ctx, "Running sweeper until signaled", zap.String("name", listingSweeper.Name()))

	// Start blocks until ctx is canceled by a signal
	if err := listingSweeper.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorCtx(ctx, err)
	}

	// Give an in-flight sweep time to finish
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := listingSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}

func openStore(cfg config.DatabaseConfig) (store.Store, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := store.ConfigureConnectionPool(db, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime, cfg.ConnMaxIdleTime); err != nil {
		return nil, err
	}
	return store.NewPGStore(db), nil
}
