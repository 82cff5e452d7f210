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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sphera-world/market-engine/internal/adapter"
	"github.com/sphera-world/market-engine/internal/aggregator"
	"github.com/sphera-world/market-engine/internal/api/middleware"
	"github.com/sphera-world/market-engine/internal/api/server"
	"github.com/sphera-world/market-engine/internal/api/shared/executor"
	"github.com/sphera-world/market-engine/internal/config"
	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/jobs"
	"github.com/sphera-world/market-engine/internal/listing"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/metadata"
	"github.com/sphera-world/market-engine/internal/providers/hedera"
	temporal "github.com/sphera-world/market-engine/internal/providers/temporal"
	"github.com/sphera-world/market-engine/internal/ratelimit"
	"github.com/sphera-world/market-engine/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
		Service:         "api-server",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Market Engine API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)
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

	// Initialize aggregator
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
	if err := agg.EnsureValidatedCollections(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to seed validated collections", zap.Error(err))
	}

	// Connect to Temporal with logger integration
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

	queue := jobs.NewQueue(jobs.Config{
		TaskQueue:         cfg.Temporal.MarketTaskQueue,
		ListingTimeout:    cfg.Jobs.ListingTimeout,
		DealInitialDelay:  cfg.Jobs.DealInitialDelay,
		DealRetryInterval: cfg.Jobs.DealRetryInterval,
		DealMaxAttempts:   cfg.Jobs.DealMaxAttempts,
		DealTimeout:       cfg.Jobs.DealTimeout,
	}, temporalClient)

	// Connect to Redis for action gates
	redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer func() {
		_ = redisClient.Close()
	}()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Redis", zap.Error(err), zap.String("addr", cfg.Redis.Addr))
	}
	limiter := ratelimit.NewLimiter(ratelimit.Config{
		AcceptBidTTL:   cfg.RateLimit.AcceptBidTTL,
		OTPResendTTL:   cfg.RateLimit.OTPResendTTL,
		OTPMismatchTTL: cfg.RateLimit.OTPMismatchTTL,
		OTPMaxAttempts: cfg.RateLimit.OTPMaxAttempts,
	}, redisClient, clock)

	listingManager := listing.NewManager(dataStore, queue, contract, agg, clock)
	exec := executor.NewExecutor(agg, listingManager, queue, limiter, clock)

	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
		},
	}, exec)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
