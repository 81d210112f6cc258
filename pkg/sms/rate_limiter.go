package sms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter gates sends per destination number.
type Limiter interface {
	// Allow returns nil when the destination is under its quota and
	// ErrRateLimitExceeded when it is not.
	Allow(ctx context.Context, destination string) error
}

// RedisLimiter is a fixed-window counter per destination, shared across
// processes through Redis. A window of 1h with limit 5 means at most five
// messages to one number per clock-aligned hour.
type RedisLimiter struct {
	client redis.UniversalClient
	limit  int
	window time.Duration
}

// NewRedisLimiter creates a Redis-backed fixed-window limiter.
func NewRedisLimiter(client redis.UniversalClient, limit int, window time.Duration) (*RedisLimiter, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: redis client is required", ErrInvalidConfig)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidConfig)
	}
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive", ErrInvalidConfig)
	}
	return &RedisLimiter{client: client, limit: limit, window: window}, nil
}

func (l *RedisLimiter) Allow(ctx context.Context, destination string) error {
	windowStart := time.Now().Truncate(l.window).Unix()
	key := fmt.Sprintf("sms:ratelimit:%s:%d", destination, windowStart)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return errors.Join(ErrFailedToSendSMS, err)
	}
	if count == 1 {
		// First hit in the window owns the expiry. Extra margin so the
		// key outlives clock skew between processes.
		if err := l.client.Expire(ctx, key, l.window+time.Minute).Err(); err != nil {
			return errors.Join(ErrFailedToSendSMS, err)
		}
	}
	if count > int64(l.limit) {
		return fmt.Errorf("%w: %s", ErrRateLimitExceeded, destination)
	}
	return nil
}

// LimitedSender decorates an SMSSender with a per-destination quota.
type LimitedSender struct {
	sender  SMSSender
	limiter Limiter
}

// NewLimitedSender wraps sender so every send passes the limiter first.
func NewLimitedSender(sender SMSSender, limiter Limiter) *LimitedSender {
	return &LimitedSender{sender: sender, limiter: limiter}
}

func (s *LimitedSender) SendSMS(ctx context.Context, params SendSMSParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := s.limiter.Allow(ctx, params.To); err != nil {
		return err
	}
	return s.sender.SendSMS(ctx, params)
}
