package ratelimiter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *clock) {
	t.Helper()

	clk := &clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(clk.Now))
	t.Cleanup(store.Close)

	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, clk
}

var cfg = ratelimiter.Config{Capacity: 5, RefillRate: 2, RefillInterval: time.Second}

func TestNewBucket_InvalidConfig(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	for _, bad := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1},
	} {
		_, err := ratelimiter.NewBucket(store, bad)
		require.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}
	assert.False(t, ratelimiter.Config{}.Enabled())
	assert.True(t, cfg.Enabled())
}

func TestBucket_AllowAndRefill(t *testing.T) {
	t.Parallel()

	b, clk := newBucket(t, cfg)
	ctx := context.Background()

	res, err := b.AllowN(ctx, "k", 3)
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 2, res.Remaining)
	assert.Equal(t, 5, res.Limit)

	res, err = b.AllowN(ctx, "k", 3)
	require.NoError(t, err)
	assert.False(t, res.Allowed(), "a refused request takes nothing")
	assert.Equal(t, -1, res.Remaining)

	res, err = b.AllowN(ctx, "k", 2)
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)

	clk.Advance(time.Second)
	res, err = b.Status(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Remaining)

	clk.Advance(time.Hour)
	res, err = b.Status(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Remaining, "refill caps at capacity")

	res, err = b.Allow(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, 4, res.Remaining, "keys are independent")

	require.NoError(t, b.Reset(ctx, "other"))
	res, _ = b.Status(ctx, "other")
	assert.Equal(t, 5, res.Remaining)
}

func TestBucket_InvalidCounts(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, cfg)
	_, err := b.AllowN(context.Background(), "k", 0)
	require.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	_, err = b.AllowN(context.Background(), "k", 6)
	require.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
}

func TestResult_RetryAfter(t *testing.T) {
	t.Parallel()

	assert.Zero(t, ratelimiter.Result{Remaining: 0}.RetryAfter())
	d := ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(time.Minute)}.RetryAfter()
	assert.Greater(t, d, 50*time.Second)
	assert.Zero(t, ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(-time.Minute)}.RetryAfter())
}

func TestMemoryStore_Sweep(t *testing.T) {
	t.Parallel()

	clk := &clock{now: time.Unix(0, 0)}
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithStaleAfter(time.Minute),
		ratelimiter.WithClock(clk.Now),
	)
	defer store.Close()
	store.Close()

	_, _, err := store.Take(context.Background(), "a", 1, cfg)
	require.NoError(t, err)
	clk.Advance(30 * time.Second)
	_, _, _ = store.Take(context.Background(), "b", 1, cfg)

	clk.Advance(45 * time.Second)
	store.Sweep()
	assert.Equal(t, 1, store.Len())
}

func TestBucket_Concurrent(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, ratelimiter.Config{Capacity: 100, RefillRate: 1, RefillInterval: time.Hour})

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for range 300 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := b.Allow(context.Background(), "shared")
			assert.NoError(t, err)
			if res.Allowed() {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(100), allowed.Load())
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, cfg)
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	key := func(r *http.Request) string { return r.Header.Get("X-Key") }
	cost := func(r *http.Request) int {
		n, _ := strconv.Atoi(r.URL.Query().Get("n"))
		return n
	}
	h := ratelimiter.Middleware(b, key, ratelimiter.WithCost(cost))(ok)

	do := func(k, n string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/?n="+n, nil)
		if k != "" {
			req.Header.Set("X-Key", k)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := do("a", "4")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))

	rec = do("a", "2")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	rec = do("a", "")
	assert.Equal(t, http.StatusOK, rec.Code, "missing cost defaults to one token")

	rec = do("b", "500")
	assert.Equal(t, http.StatusOK, rec.Code, "cost is capped at capacity")
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = do("", "500")
	assert.Equal(t, http.StatusOK, rec.Code, "empty key is not limited")
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestMiddleware_DeniedHandler(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
	h := ratelimiter.Middleware(b,
		func(*http.Request) string { return "k" },
		ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
