// Package registry records which generated names are already in use so that
// unique generation never hands out the same name twice.
package registry

import (
	"context"
	"time"
)

// Store claims and frees names. The empty string is an ordinary name, since
// patterns such as "(|)" produce it. Implementations are safe for concurrent use.
type Store interface {
	// Reserve claims name and reports false if it is already held.
	Reserve(ctx context.Context, name string) (bool, error)
	// Release frees name. Releasing an unknown name is not an error.
	Release(ctx context.Context, name string) error
	// Taken reports whether name is currently held.
	Taken(ctx context.Context, name string) (bool, error)
}

// DefaultTTL is how long a reservation lives when no TTL is configured.
// Zero means reservations never expire.
const DefaultTTL time.Duration = 0
