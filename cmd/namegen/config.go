package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrymomot/namegen/internal/api"
	"github.com/dmitrymomot/namegen/pkg/httpserver"
	"github.com/dmitrymomot/namegen/pkg/namegen"
	"github.com/dmitrymomot/namegen/pkg/ratelimiter"
	"github.com/dmitrymomot/namegen/pkg/redis"
)

type appConfig struct {
	Env            string        `env:"APP_ENV" envDefault:"development"`
	Name           string        `env:"APP_NAME" envDefault:"namegen"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	SymbolsFile    string        `env:"NAMEGEN_SYMBOLS_FILE"`
	ReservationTTL time.Duration `env:"NAMEGEN_RESERVATION_TTL" envDefault:"0s"`
	TrustedProxies []string      `env:"HTTP_TRUSTED_PROXIES" envSeparator:","`

	HTTP      httpserver.Config
	API       api.Config
	Redis     redis.Config
	RateLimit ratelimiter.Config
}

// loadSymbols reads a YAML symbol table, or returns the defaults for an
// empty path.
func loadSymbols(path string) (namegen.SymbolTable, error) {
	if path == "" {
		return namegen.DefaultSymbols(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open symbols file: %w", err)
	}
	defer f.Close()

	t, err := namegen.LoadSymbols(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
