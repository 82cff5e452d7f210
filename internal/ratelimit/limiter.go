package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/adapter"
	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/metrics"
)

const keyPrefix = "market:ratelimit"

// Action names a rate-limited user action
type Action string

const (
	ActionAcceptBid Action = "accept_bid"
	ActionOTPResend Action = "otp_resend"

	actionOTPMismatch Action = "otp_mismatch"
)

// Config holds the gate durations
type Config struct {
	AcceptBidTTL   time.Duration
	OTPResendTTL   time.Duration
	OTPMismatchTTL time.Duration
	OTPMaxAttempts int64
}

// Limiter gates user actions with short-lived Redis keys
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockLimiter
type Limiter interface {
	// Acquire opens the action's gate for the user; false means the gate is already held
	Acquire(ctx context.Context, action Action, userKey string) (bool, error)

	// Release closes the action's gate before its TTL runs out
	Release(ctx context.Context, action Action, userKey string) error

	// IsLimited reports whether the action's gate is held for the user
	IsLimited(ctx context.Context, action Action, userKey string) (bool, error)

	// RecordOTPMismatch counts a failed OTP attempt and returns the attempts so far
	RecordOTPMismatch(ctx context.Context, userKey string) (int64, error)

	// OTPAttemptsExceeded reports whether the user used up their OTP attempts
	OTPAttemptsExceeded(ctx context.Context, userKey string) (bool, error)
}

type limiter struct {
	config Config
	client adapter.RedisClient
	clock  adapter.Clock
}

// NewLimiter creates a Redis backed limiter
func NewLimiter(cfg Config, client adapter.RedisClient, clock adapter.Clock) Limiter {
	return &limiter{config: cfg, client: client, clock: clock}
}

// Key returns the Redis key of an action gate
func Key(action Action, userKey string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, action, userKey)
}

func (l *limiter) ttl(action Action) (time.Duration, error) {
	switch action {
	case ActionAcceptBid:
		return l.config.AcceptBidTTL, nil
	case ActionOTPResend:
		return l.config.OTPResendTTL, nil
	case actionOTPMismatch:
		return l.config.OTPMismatchTTL, nil
	default:
		return 0, domain.Validation("unknown rate limit action %q", action)
	}
}

// Acquire opens the action's gate for the user
func (l *limiter) Acquire(ctx context.Context, action Action, userKey string) (bool, error) {
	ttl, err := l.ttl(action)
	if err != nil {
		return false, err
	}

	ok, err := l.client.SetNX(ctx, Key(action, userKey), l.clock.Now().UnixMilli(), ttl).Result()
	if err != nil {
		return false, domain.Transient(fmt.Errorf("failed to acquire %s gate: %w", action, err))
	}
	if !ok {
		metrics.RateLimitRejections.WithLabelValues(string(action)).Inc()
		logger.DebugCtx(ctx, "Rate limited", zap.String("action", string(action)), zap.String("user", userKey))
	}
	return ok, nil
}

// IsLimited reports whether the action's gate is held for the user
func (l *limiter) IsLimited(ctx context.Context, action Action, userKey string) (bool, error) {
	if _, err := l.ttl(action); err != nil {
		return false, err
	}

	n, err := l.client.Exists(ctx, Key(action, userKey)).Result()
	if err != nil {
		return false, domain.Transient(fmt.Errorf("failed to check %s gate: %w", action, err))
	}
	return n > 0, nil
}

// RecordOTPMismatch counts a failed OTP attempt. The window starts at the first
// mismatch; a counter left without a TTL by an earlier failed EXPIRE gets one now.
func (l *limiter) RecordOTPMismatch(ctx context.Context, userKey string) (int64, error) {
	key := Key(actionOTPMismatch, userKey)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, domain.Transient(fmt.Errorf("failed to count otp mismatch: %w", err))
	}
	if count > 1 {
		ttl, err := l.client.TTL(ctx, key).Result()
		if err != nil {
			return 0, domain.Transient(fmt.Errorf("failed to read otp mismatch window: %w", err))
		}
		if ttl > 0 {
			return count, nil
		}
	}
	if err := l.client.Expire(ctx, key, l.config.OTPMismatchTTL).Err(); err != nil {
		return 0, domain.Transient(fmt.Errorf("failed to expire otp mismatch counter: %w", err))
	}
	return count, nil
}

// OTPAttemptsExceeded reports whether the mismatch counter reached the maximum
func (l *limiter) OTPAttemptsExceeded(ctx context.Context, userKey string) (bool, error) {
	count, err := l.client.Get(ctx, Key(actionOTPMismatch, userKey)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, domain.Transient(fmt.Errorf("failed to read otp mismatch counter: %w", err))
	}
	return count >= l.config.OTPMaxAttempts, nil
}

// Release closes the action's gate for the user
func (l *limiter) Release(ctx context.Context, action Action, userKey string) error {
	if _, err := l.ttl(action); err != nil {
		return err
	}
	if err := l.client.Del(ctx, Key(action, userKey)).Err(); err != nil {
		return domain.Transient(fmt.Errorf("failed to release %s gate: %w", action, err))
	}
	return nil
}
