package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("httpserver: failed to start")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("httpserver: failed to shut down gracefully")
	// ErrAlreadyRunning is returned by Run on a server that was started before.
	ErrAlreadyRunning = errors.New("httpserver: already running")
)
