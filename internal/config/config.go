package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	StreamMaxAge   time.Duration `mapstructure:"stream_max_age"`
	FailureSubject string        `mapstructure:"failure_subject"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// HederaConfig holds ledger, mirror and indexer endpoints
type HederaConfig struct {
	Network            string        `mapstructure:"network"`
	MirrorURL          string        `mapstructure:"mirror_url"`
	IndexerURL         string        `mapstructure:"indexer_url"`
	IndexerAPIKey      string        `mapstructure:"indexer_api_key"`
	RelayURL           string        `mapstructure:"relay_url"`
	ContractID         string        `mapstructure:"contract_id"`         // marketplace contract, e.g. 0.0.4567
	OperatorPrivateKey string        `mapstructure:"operator_private_key"` // hex ECDSA key used to submit contract calls
	TrashCollectorID   string        `mapstructure:"trash_collector_id"`
	HTTPTimeout        time.Duration `mapstructure:"http_timeout"`
	// ValidatedCollections is a comma separated list of "tokenId/creator" pairs
	ValidatedCollections string `mapstructure:"validated_collections"`
}

// IPFSConfig holds the content gateway configuration
type IPFSConfig struct {
	Gateway string `mapstructure:"gateway"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	MarketTaskQueue                    string  `mapstructure:"market_task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int     `mapstructure:"max_concurrent_activity_task_pollers"`
}

// JobsConfig holds timing for queued marketplace jobs
type JobsConfig struct {
	DealInitialDelay  time.Duration `mapstructure:"deal_initial_delay"`
	DealRetryInterval time.Duration `mapstructure:"deal_retry_interval"`
	DealMaxAttempts   int32         `mapstructure:"deal_max_attempts"`
	DealTimeout       time.Duration `mapstructure:"deal_timeout"`
	ListingTimeout    time.Duration `mapstructure:"listing_timeout"`

	FailureEventTimeout  time.Duration `mapstructure:"failure_event_timeout"`
	FailureEventAttempts int32         `mapstructure:"failure_event_attempts"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig holds per-action gate durations
type RateLimitConfig struct {
	AcceptBidTTL   time.Duration `mapstructure:"accept_bid_ttl"`
	OTPResendTTL   time.Duration `mapstructure:"otp_resend_ttl"`
	OTPMismatchTTL time.Duration `mapstructure:"otp_mismatch_ttl"`
	OTPMaxAttempts int64         `mapstructure:"otp_max_attempts"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// AllowedOrigins lists the CORS origins; empty allows any origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string `mapstructure:"jwt_public_key"`
}

// WorkerConfig holds in-process worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// ListingSweeperConfig holds configuration for the listing expiry sweeper
type ListingSweeperConfig struct {
	Schedule  string `mapstructure:"schedule"`
	BatchSize int    `mapstructure:"batch_size"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Temporal   TemporalConfig  `mapstructure:"temporal"`
	Jobs       JobsConfig      `mapstructure:"jobs"`
	Auth       AuthConfig      `mapstructure:"auth"`
	Hedera     HederaConfig    `mapstructure:"hedera"`
	IPFS       IPFSConfig      `mapstructure:"ipfs"`
	Redis      RedisConfig     `mapstructure:"redis"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
	Worker     WorkerConfig    `mapstructure:"worker"`
}

// WorkerMarketConfig holds configuration for worker-market
type WorkerMarketConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Temporal   TemporalConfig `mapstructure:"temporal"`
	Jobs       JobsConfig     `mapstructure:"jobs"`
	Hedera     HederaConfig   `mapstructure:"hedera"`
	IPFS       IPFSConfig     `mapstructure:"ipfs"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Worker     WorkerConfig   `mapstructure:"worker"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig     `mapstructure:",squash"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Temporal       TemporalConfig       `mapstructure:"temporal"`
	Jobs           JobsConfig           `mapstructure:"jobs"`
	ListingSweeper ListingSweeperConfig `mapstructure:"listing_sweeper"`
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.market_task_queue", "market-jobs")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 50)
	v.SetDefault("temporal.worker_activities_per_second", 50)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 10)
	v.SetDefault("jobs.deal_initial_delay", "5s")
	v.SetDefault("jobs.deal_retry_interval", "5s")
	v.SetDefault("jobs.deal_max_attempts", 4)
	v.SetDefault("jobs.deal_timeout", "15s")
	v.SetDefault("jobs.listing_timeout", "30s")
	v.SetDefault("jobs.failure_event_timeout", "10s")
	v.SetDefault("jobs.failure_event_attempts", 3)
}

func setHederaDefaults(v *viper.Viper) {
	v.SetDefault("hedera.network", "testnet")
	v.SetDefault("hedera.mirror_url", "https://testnet.mirrornode.hedera.com/api/v1")
	v.SetDefault("hedera.indexer_url", "https://testnet.hedera.api.hgraph.dev/v1/graphql")
	v.SetDefault("hedera.relay_url", "https://testnet.hashio.io/api")
	v.SetDefault("hedera.http_timeout", "30s")
	v.SetDefault("ipfs.gateway", "https://ipfs.io/ipfs")
	v.SetDefault("worker.pool_size", 10)
	v.SetDefault("worker.queue_size", 100)
}

// readConfig reads the config file, tolerating its absence, and unmarshals into out
func readConfig(v *viper.Viper, out interface{}) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("rate_limit.accept_bid_ttl", "20s")
	v.SetDefault("rate_limit.otp_resend_ttl", "20s")
	v.SetDefault("rate_limit.otp_mismatch_ttl", "2000s")
	v.SetDefault("rate_limit.otp_max_attempts", 3)
	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setHederaDefaults(v)

	var config APIConfig
	if err := readConfig(v, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadWorkerMarketConfig loads configuration for worker-market
func LoadWorkerMarketConfig(configFile string, envPath string) (*WorkerMarketConfig, error) {
	v := configureViper("worker-market", configFile, envPath)

	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKET_JOBS")
	v.SetDefault("nats.stream_max_age", "168h")
	v.SetDefault("nats.failure_subject", "market.jobs.failed")
	v.SetDefault("nats.connection_name", "worker-market")
	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setHederaDefaults(v)

	var config WorkerMarketConfig
	if err := readConfig(v, &config); err != nil {
		return nil, err
	}

	if config.Hedera.OperatorPrivateKey == "" {
		return nil, errors.New("hedera.operator_private_key is required")
	}
	if config.Hedera.ContractID == "" {
		return nil, errors.New("hedera.contract_id is required")
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("listing_sweeper.schedule", "@every 1m")
	v.SetDefault("listing_sweeper.batch_size", 100)
	setDatabaseDefaults(v)
	setTemporalDefaults(v)

	var cfg SweeperConfig
	if err := readConfig(v, &cfg); err != nil {
		return nil, err
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search order: current directory, service directory, shared config directory
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("MARKET_ENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		"environment",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.stream_max_age",
		"nats.failure_subject",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Hedera
		"hedera.network",
		"hedera.mirror_url",
		"hedera.indexer_url",
		"hedera.indexer_api_key",
		"hedera.relay_url",
		"hedera.contract_id",
		"hedera.operator_private_key",
		"hedera.trash_collector_id",
		"hedera.http_timeout",
		"hedera.validated_collections",
		"ipfs.gateway",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.market_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Jobs
		"jobs.deal_initial_delay",
		"jobs.deal_retry_interval",
		"jobs.deal_max_attempts",
		"jobs.deal_timeout",
		"jobs.listing_timeout",
		"jobs.failure_event_timeout",
		"jobs.failure_event_attempts",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		"rate_limit.accept_bid_ttl",
		"rate_limit.otp_resend_ttl",
		"rate_limit.otp_mismatch_ttl",
		"rate_limit.otp_max_attempts",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		"auth.jwt_public_key",
		// Worker pool
		"worker.pool_size",
		"worker.queue_size",
		// Listing sweeper
		"listing_sweeper.schedule",
		"listing_sweeper.batch_size",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Shared base first, then local, then optional per-service local
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
