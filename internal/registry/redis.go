package registry

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces reservation keys.
const DefaultKeyPrefix = "namegen:name:"

// ErrStore wraps failures reported by the backing Redis server.
var ErrStore = errors.New("registry: store operation failed")

// RedisStore keeps reservations in Redis so that several processes share
// one namespace. Each name is a key set with SET NX.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix sets the key namespace. Empty values are ignored.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithRedisTTL expires reservations after ttl. Non-positive values disable expiry.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) { s.ttl = max(ttl, 0) }
}

// NewRedisStore stores reservations through client under DefaultKeyPrefix.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: DefaultKeyPrefix,
		ttl:    DefaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// key maps name into the namespace. The empty name is the bare prefix.
func (s *RedisStore) key(name string) string { return s.prefix + name }

func (s *RedisStore) Reserve(ctx context.Context, name string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.key(name), time.Now().UTC().Format(time.RFC3339), s.ttl).Result()
	if err != nil {
		return false, errors.Join(ErrStore, err)
	}
	return ok, nil
}

func (s *RedisStore) Release(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, s.key(name)).Err(); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (s *RedisStore) Taken(ctx context.Context, name string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(name)).Result()
	if err != nil {
		return false, errors.Join(ErrStore, err)
	}
	return n > 0, nil
}
