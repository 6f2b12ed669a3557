package ratelimiter

import (
	"context"
	"fmt"
	"time"
)

// Config defines the token bucket parameters. A zero Capacity disables
// limiting for callers that check Enabled.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"200"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"20"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1s"`
}

// Enabled reports whether the configuration asks for rate limiting.
func (c Config) Enabled() bool { return c.Capacity > 0 }

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.RefillRate <= 0:
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	case c.RefillInterval <= 0:
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result is the outcome of a rate limit check.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // tokens left; negative when denied
	ResetAt   time.Time // next refill
}

// Allowed reports whether the request fits in the bucket.
func (r Result) Allowed() bool { return r.Remaining >= 0 }

// RetryAfter returns how long to wait before retrying, or 0 if allowed.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}

// Store persists bucket state.
type Store interface {
	// Take removes n tokens from key's bucket if at least n are available.
	// It returns the tokens left, negative when the request was refused,
	// and the next refill time. n == 0 only refreshes the bucket.
	Take(ctx context.Context, key string, n int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

// Bucket is a token bucket limiter over a Store.
type Bucket struct {
	store Store
	cfg   Config
}

// NewBucket validates cfg and returns a limiter.
func NewBucket(store Store, cfg Config) (*Bucket, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, cfg: cfg}, nil
}

// Allow takes one token.
func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN takes n tokens. Requests costing more than Capacity are refused
// without touching the bucket.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	if n > b.cfg.Capacity {
		return Result{}, fmt.Errorf("%w: %d exceeds capacity %d", ErrInvalidTokenCount, n, b.cfg.Capacity)
	}
	return b.take(ctx, key, n)
}

// Status returns the bucket state without consuming tokens.
func (b *Bucket) Status(ctx context.Context, key string) (Result, error) {
	return b.take(ctx, key, 0)
}

func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}

// Limit returns the bucket capacity.
func (b *Bucket) Limit() int { return b.cfg.Capacity }

func (b *Bucket) take(ctx context.Context, key string, n int) (Result, error) {
	remaining, resetAt, err := b.store.Take(ctx, key, n, b.cfg)
	if err != nil {
		return Result{}, err
	}
	return Result{Limit: b.cfg.Capacity, Remaining: remaining, ResetAt: resetAt}, nil
}
