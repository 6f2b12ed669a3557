package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrNilPointer is returned when a nil pointer is provided to Load or Parse.
	ErrNilPointer = errors.New("config: nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when an existing .env file cannot be read.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")
)
