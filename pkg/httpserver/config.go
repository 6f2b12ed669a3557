package httpserver

import "time"

// Config holds listener settings loaded from the environment.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// NewFromConfig creates a Server from cfg. Zero fields keep package defaults;
// opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	all := make([]Option, 0, len(opts)+6)
	if cfg.Addr != "" {
		all = append(all, WithAddr(cfg.Addr))
	}
	timeouts := []struct {
		d   time.Duration
		set func(time.Duration) Option
	}{
		{cfg.ReadTimeout, WithReadTimeout},
		{cfg.ReadHeaderTimeout, WithReadHeaderTimeout},
		{cfg.WriteTimeout, WithWriteTimeout},
		{cfg.IdleTimeout, WithIdleTimeout},
		{cfg.ShutdownTimeout, WithShutdownTimeout},
	}
	for _, t := range timeouts {
		if t.d > 0 {
			all = append(all, t.set(t.d))
		}
	}
	return New(append(all, opts...)...)
}
