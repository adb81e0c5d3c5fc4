package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "helpdesk:ratelimit:"

// RedisRateLimiter keeps one sorted set per key holding request timestamps.
type RedisRateLimiter struct {
	client *redis.Client
	config Config
}

func NewRedisRateLimiter(client *redis.Client, config Config) *RedisRateLimiter {
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	return &RedisRateLimiter{
		client: client,
		config: config,
	}
}

// Allow records the request and reports whether it fits in the window.
// A non-positive request limit disables limiting.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.config.Requests <= 0 {
		return true, nil
	}

	now := time.Now()
	redisKey := l.getKey(key)
	windowStart := now.Add(-l.config.Window).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, redisKey, l.config.Window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return zcard.Val() < int64(l.config.Requests), nil
}

// GetRemaining returns how many requests are still allowed in the current window.
func (l *RedisRateLimiter) GetRemaining(ctx context.Context, key string) (int64, error) {
	redisKey := l.getKey(key)
	windowStart := time.Now().Add(-l.config.Window).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to get remaining: %w", err)
	}

	remaining := int64(l.config.Requests) - zcard.Val()
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit: %w", err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string) string {
	return keyPrefix + identifier
}
