package namegen

import (
	"context"
	"errors"
)

// DefaultAttempts bounds GenerateUnique when attempts is not positive.
const DefaultAttempts = 100

// Reserver claims a generated name. Reserve returns false when the name is
// already taken.
type Reserver interface {
	Reserve(ctx context.Context, name string) (bool, error)
}

// GenerateUnique draws names from g until r accepts one. It gives up with
// ErrExhausted after attempts draws.
func GenerateUnique(ctx context.Context, g *Generator, rng Rand, r Reserver, attempts int) (string, error) {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	if rng == nil {
		rng = globalRand{}
	}

	for range attempts {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		name := g.Generate(rng)
		ok, err := r.Reserve(ctx, name)
		if err != nil {
			return "", errors.Join(ErrReserve, err)
		}
		if ok {
			return name, nil
		}
	}
	return "", ErrExhausted
}
