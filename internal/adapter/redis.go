package adapter

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient defines the subset of Redis operations used for short-lived gates
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) *redis.StatusCmd

	// SetNX sets key only if it does not exist yet
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd

	// Incr increments the integer stored at key
	Incr(ctx context.Context, key string) *redis.IntCmd

	// Expire sets a TTL on key
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd

	// TTL returns the remaining time to live of key, -1 when it has none
	TTL(ctx context.Context, key string) *redis.DurationCmd

	// Get returns the string stored at key
	Get(ctx context.Context, key string) *redis.StringCmd

	// Exists counts how many of the keys exist
	Exists(ctx context.Context, keys ...string) *redis.IntCmd

	// Del removes the keys
	Del(ctx context.Context, keys ...string) *redis.IntCmd

	// Close closes the Redis connection
	Close() error
}

// NewRedisClient creates a new Redis client.
// *redis.Client satisfies RedisClient directly.
func NewRedisClient(addr, password string, db int) RedisClient {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
