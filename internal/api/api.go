// Package api serves name generation over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/namegen/internal/registry"
	"github.com/dmitrymomot/namegen/pkg/cache"
	"github.com/dmitrymomot/namegen/pkg/clientip"
	"github.com/dmitrymomot/namegen/pkg/environment"
	"github.com/dmitrymomot/namegen/pkg/httpserver"
	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/namegen"
	"github.com/dmitrymomot/namegen/pkg/ratelimiter"
	"github.com/dmitrymomot/namegen/pkg/requestid"
)

// Config bounds what a single request may ask for.
type Config struct {
	CacheSize int `env:"NAMEGEN_CACHE_SIZE" envDefault:"256"`
	MaxCount  int `env:"NAMEGEN_MAX_COUNT" envDefault:"100"`
	MaxDepth  int `env:"NAMEGEN_MAX_DEPTH" envDefault:"32"`
	// Attempts per name for unique generation.
	UniqueAttempts int `env:"NAMEGEN_UNIQUE_ATTEMPTS" envDefault:"100"`
}

func (c Config) normalized() Config {
	if c.CacheSize <= 0 {
		c.CacheSize = 256
	}
	if c.MaxCount <= 0 {
		c.MaxCount = 100
	}
	if c.MaxDepth < 0 {
		c.MaxDepth = 0
	}
	if c.UniqueAttempts <= 0 {
		c.UniqueAttempts = namegen.DefaultAttempts
	}
	return c
}

type compileKey struct {
	pattern    string
	collapse   bool
	capitalize bool
}

// API holds the handlers and their shared state.
type API struct {
	cfg      Config
	log      *slog.Logger
	symbols  namegen.SymbolTable
	store    registry.Store
	env      environment.Environment
	checks   []httpserver.Check
	limiter  *ratelimiter.Bucket
	clientIP *clientip.Resolver
	compiled *cache.LRU[compileKey, *namegen.Generator]
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the request logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithSymbols replaces the default symbol table for every compiled pattern.
func WithSymbols(t namegen.SymbolTable) Option {
	return func(a *API) {
		if len(t) > 0 {
			a.symbols = t
		}
	}
}

// WithStore sets the registry used when unique names are requested.
func WithStore(s registry.Store) Option {
	return func(a *API) {
		if s != nil {
			a.store = s
		}
	}
}

// WithEnvironment sets the environment stored in every request context.
func WithEnvironment(env environment.Environment) Option {
	return func(a *API) { a.env = env }
}

// WithReadinessChecks adds dependency checks to /health/ready.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(a *API) { a.checks = append(a.checks, checks...) }
}

// WithRateLimit limits /v1 requests per client address. Generate requests
// cost one token per requested name. A nil resolver trusts no proxies.
func WithRateLimit(b *ratelimiter.Bucket, res *clientip.Resolver) Option {
	return func(a *API) {
		a.limiter = b
		a.clientIP = res
	}
}

// New builds an API. Without WithStore unique names are tracked in memory.
func New(cfg Config, opts ...Option) *API {
	cfg = cfg.normalized()
	a := &API{
		cfg:     cfg,
		log:     logger.Discard(),
		symbols: namegen.DefaultSymbols(),
		env:     environment.Development,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.store == nil {
		a.store = registry.NewMemoryStore()
	}
	if a.limiter != nil && a.clientIP == nil {
		a.clientIP, _ = clientip.New()
	}
	a.compiled = cache.New[compileKey, *namegen.Generator](cfg.CacheSize)
	return a
}

// Router returns the HTTP handler for every endpoint.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(a.env))
	r.Use(middleware.Recoverer)

	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(a.log, a.checks...))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		if a.limiter != nil {
			r.Use(a.clientIP.Middleware)
			r.Use(ratelimiter.Middleware(a.limiter,
				func(r *http.Request) string { return clientip.FromContext(r.Context()) },
				ratelimiter.WithCost(a.requestCost),
				ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, r *http.Request) {
					writeError(w, r, errRateLimited)
				}),
				ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
					a.log.ErrorContext(r.Context(), "rate limiter failed", logger.Error(err))
					writeError(w, r, err)
				}),
			))
		}
		r.Get("/generate", a.handleGenerate)
		r.Get("/stats", a.handleStats)
		r.Get("/presets", a.handlePresets)
		r.Get("/presets/{name}", a.handlePreset)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errMethodNotAllowed)
	})
	return r
}

// requestCost charges generate requests by the number of names asked for.
func (a *API) requestCost(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil || n < 1 {
		return 1
	}
	return min(n, a.cfg.MaxCount)
}
