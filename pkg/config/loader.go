package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts how environment variables are mapped onto a struct.
type Option func(*env.Options)

// WithPrefix requires every variable name to start with prefix.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment replaces the process environment with vars.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// Parse fills v from environment variables. Nothing is cached.
func Parse[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}
	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadEnv loads variables from the given dotenv files, ".env" when none are
// given. Missing files are skipped; variables already set are never
// overwritten.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", f, err))
		}
	}
	return nil
}

type entry struct {
	once sync.Once
	val  any
	err  error
}

var (
	cache         sync.Map // reflect.Type -> *entry
	dotenvOnce    sync.Once
	dotenvLoadErr error
)

// Load fills v from the environment, parsing each struct type only once per
// process. A failed parse is cached as well.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() { dotenvLoadErr = LoadEnv() })
	if dotenvLoadErr != nil {
		return dotenvLoadErr
	}

	raw, _ := cache.LoadOrStore(reflect.TypeFor[T](), &entry{})
	e := raw.(*entry)
	e.once.Do(func() {
		var fresh T
		if err := Parse(&fresh); err != nil {
			e.err = err
			return
		}
		e.val = fresh
	})
	if e.err != nil {
		return e.err
	}
	*v = e.val.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
