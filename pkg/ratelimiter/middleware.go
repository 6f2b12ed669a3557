package ratelimiter

import (
	"math"
	"net/http"
	"strconv"
)

// KeyFunc extracts the bucket key from a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

// CostFunc returns how many tokens a request takes.
type CostFunc func(r *http.Request) int

type middlewareOptions struct {
	cost    CostFunc
	denied  http.HandlerFunc
	onError func(w http.ResponseWriter, r *http.Request, err error)
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareOptions)

// WithCost charges cost(r) tokens per request instead of one.
func WithCost(cost CostFunc) MiddlewareOption {
	return func(o *middlewareOptions) {
		if cost != nil {
			o.cost = cost
		}
	}
}

// WithDeniedHandler replaces the default 429 response.
func WithDeniedHandler(h http.HandlerFunc) MiddlewareOption {
	return func(o *middlewareOptions) {
		if h != nil {
			o.denied = h
		}
	}
}

// WithErrorHandler replaces the default 500 response for store failures.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(o *middlewareOptions) {
		if fn != nil {
			o.onError = fn
		}
	}
}

// Middleware rejects requests once key's bucket runs dry and sets the
// X-RateLimit-* headers on every limited response.
func Middleware(b *Bucket, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	o := middlewareOptions{
		cost: func(*http.Request) int { return 1 },
		denied: func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		onError: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			cost := min(max(o.cost(r), 1), b.Limit())
			res, err := b.AllowN(r.Context(), k, cost)
			if err != nil {
				o.onError(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(res.Remaining, 0)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				secs := int(math.Ceil(res.RetryAfter().Seconds()))
				h.Set("Retry-After", strconv.Itoa(max(secs, 1)))
				o.denied(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
