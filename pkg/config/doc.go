// Package config fills configuration structs from environment variables.
//
// Fields are bound with caarlos0/env struct tags:
//
//	type AppConfig struct {
//		Name      string `env:"APP_NAME" envDefault:"namegen"`
//		CacheSize int    `env:"NAMEGEN_CACHE_SIZE" envDefault:"256"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load reads a .env file from the working directory the first time it is
// called and caches the parsed value per struct type, so later calls for the
// same type are free. Parse skips both the .env file and the cache and is the
// right choice for tests and for values that must reflect the current
// environment.
package config
