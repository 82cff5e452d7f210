package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	if content == "" {
		return filepath.Join(tmpDir, "nonexistent.yaml")
	}
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
environment: testnet
server:
  host: 127.0.0.1
  port: 9090
  allowed_origins:
    - https://sphera.world
    - https://app.sphera.world
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
hedera:
  mirror_url: "http://mirror.local/api/v1"
  indexer_url: "http://indexer.local/graphql"
  indexer_api_key: "secret"
  trash_collector_id: "0.0.999"
  validated_collections: "0.0.100/0.0.7,0.0.200/0.0.8"
redis:
  addr: "redis:6379"
rate_limit:
  accept_bid_ttl: 30s
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "testnet", cfg.Environment)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, []string{"https://sphera.world", "https://app.sphera.world"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "http://mirror.local/api/v1", cfg.Hedera.MirrorURL)
				assert.Equal(t, "secret", cfg.Hedera.IndexerAPIKey)
				assert.Equal(t, "0.0.999", cfg.Hedera.TrashCollectorID)
				assert.Equal(t, "0.0.100/0.0.7,0.0.200/0.0.8", cfg.Hedera.ValidatedCollections)
				assert.Equal(t, "redis:6379", cfg.Redis.Addr)
				assert.Equal(t, 30*time.Second, cfg.RateLimit.AcceptBidTTL)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  dbname: testdb
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "market-jobs", cfg.Temporal.MarketTaskQueue)
				assert.Equal(t, 20*time.Second, cfg.RateLimit.AcceptBidTTL)
				assert.Equal(t, 20*time.Second, cfg.RateLimit.OTPResendTTL)
				assert.Equal(t, 2000*time.Second, cfg.RateLimit.OTPMismatchTTL)
				assert.Equal(t, int64(3), cfg.RateLimit.OTPMaxAttempts)
				assert.Equal(t, 5*time.Second, cfg.Jobs.DealInitialDelay)
				assert.Equal(t, int32(4), cfg.Jobs.DealMaxAttempts)
				assert.Equal(t, 15*time.Second, cfg.Jobs.DealTimeout)
				assert.Equal(t, "https://ipfs.io/ipfs", cfg.IPFS.Gateway)
			},
		},
		{
			name:       "missing config file",
			configFile: "",
		},
		{
			name: "invalid port",
			configFile: `
server:
  port: invalid
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAPIConfig(writeConfig(t, tt.configFile), "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			if tt.validate != nil {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadWorkerMarketConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *WorkerMarketConfig)
	}{
		{
			name: "valid config file",
			configFile: `
database:
  host: localhost
  dbname: testdb
temporal:
  host_port: "temporal:7233"
  market_task_queue: "custom-queue"
hedera:
  relay_url: "http://relay.local"
  contract_id: "0.0.4567"
  operator_private_key: "abcd"
nats:
  url: "nats://localhost:4222"
jobs:
  deal_max_attempts: 6
`,
			validate: func(t *testing.T, cfg *WorkerMarketConfig) {
				assert.Equal(t, "temporal:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "custom-queue", cfg.Temporal.MarketTaskQueue)
				assert.Equal(t, "http://relay.local", cfg.Hedera.RelayURL)
				assert.Equal(t, "0.0.4567", cfg.Hedera.ContractID)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "market.jobs.failed", cfg.NATS.FailureSubject)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "MARKET_JOBS", cfg.NATS.StreamName)
				assert.Equal(t, 168*time.Hour, cfg.NATS.StreamMaxAge)
				assert.Equal(t, int32(6), cfg.Jobs.DealMaxAttempts)
				assert.Equal(t, 5*time.Second, cfg.Jobs.DealRetryInterval)
				assert.Equal(t, 10*time.Second, cfg.Jobs.FailureEventTimeout)
				assert.Equal(t, int32(3), cfg.Jobs.FailureEventAttempts)
			},
		},
		{
			name: "missing operator key",
			configFile: `
hedera:
  contract_id: "0.0.4567"
`,
			expectError: true,
		},
		{
			name: "missing contract id",
			configFile: `
hedera:
  operator_private_key: "abcd"
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadWorkerMarketConfig(writeConfig(t, tt.configFile), "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadSweeperConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadSweeperConfig(writeConfig(t, `
database:
  host: localhost
  dbname: testdb
`), "")
		require.NoError(t, err)
		assert.Equal(t, "@every 1m", cfg.ListingSweeper.Schedule)
		assert.Equal(t, 100, cfg.ListingSweeper.BatchSize)
		assert.Equal(t, 5, cfg.Database.MaxOpenConns)
		assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	})

	t.Run("database host is required", func(t *testing.T) {
		cfg, err := LoadSweeperConfig(writeConfig(t, `
database:
  dbname: testdb
`), "")
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	require.NoError(t, os.MkdirAll(envDir, 0750))

	envContent := `MARKET_ENGINE_DEBUG=true
MARKET_ENGINE_DATABASE_HOST=env-host
MARKET_ENGINE_DATABASE_PORT=3306
MARKET_ENGINE_HEDERA_INDEXER_API_KEY=env-key
`
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600))
	t.Cleanup(func() {
		for _, key := range []string{
			"MARKET_ENGINE_DEBUG",
			"MARKET_ENGINE_DATABASE_HOST",
			"MARKET_ENGINE_DATABASE_PORT",
			"MARKET_ENGINE_HEDERA_INDEXER_API_KEY",
		} {
			_ = os.Unsetenv(key)
		}
	})

	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
hedera:
  indexer_api_key: file-key
`
	require.NoError(t, os.WriteFile(configPath, []byte(configFile), 0600))

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// .env values are loaded into the process environment and win over the file
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-key", cfg.Hedera.IndexerAPIKey)
}
