// Package ratelimiter implements token bucket rate limiting with an
// in-memory store and HTTP middleware.
//
// Each key owns a bucket holding up to Capacity tokens that regains
// RefillRate tokens every RefillInterval. Requests may cost more than one
// token, which lets expensive calls drain the bucket faster:
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, cfg)
//	...
//	r.Use(ratelimiter.Middleware(bucket, keyFn,
//		ratelimiter.WithCost(func(r *http.Request) int { return batchSize(r) }),
//	))
package ratelimiter
