package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/namegen/internal/api"
	"github.com/dmitrymomot/namegen/internal/registry"
	"github.com/dmitrymomot/namegen/pkg/clientip"
	"github.com/dmitrymomot/namegen/pkg/config"
	"github.com/dmitrymomot/namegen/pkg/environment"
	"github.com/dmitrymomot/namegen/pkg/httpserver"
	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/ratelimiter"
	"github.com/dmitrymomot/namegen/pkg/redis"
	"github.com/dmitrymomot/namegen/pkg/requestid"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg appConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

func serve(ctx context.Context, cfg appConfig) error {
	env := environment.Parse(cfg.Env)
	logOpts := []logger.Option{
		logger.WithEnvironment(string(env), cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	symbols, err := loadSymbols(cfg.SymbolsFile)
	if err != nil {
		return err
	}

	opts := []api.Option{
		api.WithLogger(log.With(logger.Component("api"))),
		api.WithSymbols(symbols),
		api.WithEnvironment(env),
	}

	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		opts = append(opts,
			api.WithStore(registry.NewRedisStore(client, registry.WithRedisTTL(cfg.ReservationTTL))),
			api.WithReadinessChecks(redis.Healthcheck(client)),
		)
		log.InfoContext(ctx, "using redis name registry")
	} else {
		opts = append(opts, api.WithStore(registry.NewMemoryStore(registry.WithMemoryTTL(cfg.ReservationTTL))))
		log.InfoContext(ctx, "using in-memory name registry")
	}

	if cfg.RateLimit.Enabled() {
		resolver, err := clientip.New(cfg.TrustedProxies...)
		if err != nil {
			return err
		}
		store := ratelimiter.NewMemoryStore()
		defer store.Close()
		bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
		if err != nil {
			return err
		}
		opts = append(opts, api.WithRateLimit(bucket, resolver))
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log.With(logger.Component("http"))))
	if err := srv.Run(ctx, api.New(cfg.API, opts...).Router()); err != nil && !errors.Is(err, context.Canceled) {
		log.ErrorContext(ctx, "server stopped with error", logger.Error(err))
		return err
	}
	return nil
}
