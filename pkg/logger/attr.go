package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error". A nil error yields an empty Attr,
// which slog omits.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Pattern records a generator pattern under the key "pattern".
func Pattern(p string) slog.Attr {
	return slog.String("pattern", p)
}

// Preset records a preset name under the key "preset". An empty name yields
// an empty Attr.
func Preset(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("preset", name)
}

// Count records the number of generated names under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Seed records a random seed under the key "seed".
func Seed(seed uint64) slog.Attr {
	return slog.Uint64("seed", seed)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}
