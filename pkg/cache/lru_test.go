package cache_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/pkg/cache"
)

func TestLRU_GetAdd(t *testing.T) {
	t.Parallel()

	c := cache.New[string, int](2)

	_, ok := c.Get("a")
	assert.False(t, ok)

	assert.False(t, c.Add("a", 1))
	assert.False(t, c.Add("b", 2))
	assert.False(t, c.Add("a", 10), "updating an existing key never evicts")

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)

	// "b" is now least recently used.
	assert.True(t, c.Add("c", 3))
	assert.False(t, c.Contains("b"))
	assert.True(t, c.Contains("a"))
	assert.True(t, c.Contains("c"))
	assert.Equal(t, 2, c.Len())

	assert.Equal(t, cache.Stats{Hits: 1, Misses: 1, Evictions: 1}, c.Stats())
}

func TestLRU_EvictCallback(t *testing.T) {
	t.Parallel()

	var evicted []string
	c := cache.New(2, cache.WithEvictCallback(func(k string, _ int) {
		evicted = append(evicted, k)
	}))

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)
	assert.Equal(t, []string{"a"}, evicted)

	v, ok := c.Remove("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, []string{"a"}, evicted, "Remove does not trigger the callback")

	_, ok = c.Remove("missing")
	assert.False(t, ok)

	c.Purge()
	assert.Equal(t, []string{"a", "c"}, evicted)
	assert.Zero(t, c.Len())
}

func TestLRU_GetOrLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads once then hits", func(t *testing.T) {
		t.Parallel()

		c := cache.New[string, int](4)
		calls := 0
		load := func() (int, error) {
			calls++
			return 42, nil
		}

		v, hit, err := c.GetOrLoad("k", load)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Equal(t, 42, v)

		v, hit, err = c.GetOrLoad("k", load)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, 42, v)
		assert.Equal(t, 1, calls)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()

		c := cache.New[string, int](4)
		boom := errors.New("boom")

		_, _, err := c.GetOrLoad("k", func() (int, error) { return 0, boom })
		require.ErrorIs(t, err, boom)
		assert.False(t, c.Contains("k"))

		v, _, err := c.GetOrLoad("k", func() (int, error) { return 7, nil })
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("concurrent loads share work", func(t *testing.T) {
		t.Parallel()

		c := cache.New[string, int](4)
		var calls atomic.Int32
		release := make(chan struct{})

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, _, err := c.GetOrLoad("k", func() (int, error) {
					calls.Add(1)
					<-release
					return 1, nil
				})
				assert.NoError(t, err)
				assert.Equal(t, 1, v)
			}()
		}
		close(release)
		wg.Wait()

		assert.LessOrEqual(t, calls.Load(), int32(16))
		assert.True(t, c.Contains("k"))
	})
}

func TestLRU_InvalidCapacity(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { cache.New[string, int](0) })
	assert.Panics(t, func() { cache.New[string, int](-1) })
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.New[int, int](64)
	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				k := (i * (w + 1)) % 128
				c.Add(k, i)
				c.Get(k)
				if i%7 == 0 {
					c.Remove(k)
				}
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 64)
}

func BenchmarkLRU_Get(b *testing.B) {
	c := cache.New[int, int](1000)
	for i := range 1000 {
		c.Add(i, i)
	}
	i := 0
	for b.Loop() {
		c.Get(i % 1000)
		i++
	}
}

func BenchmarkLRU_Add(b *testing.B) {
	c := cache.New[int, int](1000)
	i := 0
	for b.Loop() {
		c.Add(i%2000, i)
		i++
	}
}
