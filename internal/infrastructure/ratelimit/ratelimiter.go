package ratelimit

import (
	"context"
	"time"
)

// Config caps requests per key over a sliding window.
type Config struct {
	Requests int
	Window   time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	GetRemaining(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}
