package httpserver

import (
	"log/slog"
	"time"
)

// Option configures the HTTP server.
type Option func(*options)

type options struct {
	addr              string
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	logger            *slog.Logger
	onStart           []func(addr string)
	onStop            []func()
}

func defaultOptions() options {
	return options{
		addr:              ":8080",
		readHeaderTimeout: 5 * time.Second,
		shutdownTimeout:   5 * time.Second,
	}
}

// WithAddr sets the listen address. Empty values are ignored.
func WithAddr(addr string) Option {
	return func(o *options) {
		if addr != "" {
			o.addr = addr
		}
	}
}

func positive(d time.Duration, set func(time.Duration)) {
	if d > 0 {
		set(d)
	}
}

func WithReadTimeout(d time.Duration) Option {
	return func(o *options) { positive(d, func(d time.Duration) { o.readTimeout = d }) }
}

func WithReadHeaderTimeout(d time.Duration) Option {
	return func(o *options) { positive(d, func(d time.Duration) { o.readHeaderTimeout = d }) }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) { positive(d, func(d time.Duration) { o.writeTimeout = d }) }
}

func WithIdleTimeout(d time.Duration) Option {
	return func(o *options) { positive(d, func(d time.Duration) { o.idleTimeout = d }) }
}

// WithShutdownTimeout bounds how long Run waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) { positive(d, func(d time.Duration) { o.shutdownTimeout = d }) }
}

// WithLogger sets the logger for lifecycle events. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStartHook registers fn to run once the listener is bound.
func WithStartHook(fn func(addr string)) Option {
	return func(o *options) {
		if fn != nil {
			o.onStart = append(o.onStart, fn)
		}
	}
}

// WithStopHook registers fn to run after shutdown completes.
func WithStopHook(fn func()) Option {
	return func(o *options) {
		if fn != nil {
			o.onStop = append(o.onStop, fn)
		}
	}
}
