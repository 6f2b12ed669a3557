package registry_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/internal/registry"
)

func redisClient(t *testing.T) *goredis.Client {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestRedisStore(t *testing.T) {
	client := redisClient(t)
	ctx := context.Background()
	s := registry.NewRedisStore(client,
		registry.WithKeyPrefix("namegen-test:"+uuid.NewString()+":"),
		registry.WithRedisTTL(time.Minute),
	)

	ok, err := s.Reserve(ctx, "Thalion")
	require.NoError(t, err)
	assert.True(t, ok)
	t.Cleanup(func() { _ = s.Release(context.Background(), "Thalion") })

	ok, err = s.Reserve(ctx, "Thalion")
	require.NoError(t, err)
	assert.False(t, ok)

	taken, err := s.Taken(ctx, "Thalion")
	require.NoError(t, err)
	assert.True(t, taken)

	require.NoError(t, s.Release(ctx, "Thalion"))
	taken, err = s.Taken(ctx, "Thalion")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestRedisStore_EmptyName(t *testing.T) {
	s := registry.NewRedisStore(redisClient(t),
		registry.WithKeyPrefix("namegen-test:"+uuid.NewString()+":"),
		registry.WithRedisTTL(time.Minute),
	)
	ctx := context.Background()

	ok, err := s.Reserve(ctx, "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Reserve(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Release(ctx, ""))
	taken, err := s.Taken(ctx, "")
	require.NoError(t, err)
	assert.False(t, taken)
}
