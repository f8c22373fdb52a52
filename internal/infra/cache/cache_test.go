package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"leadforge/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := NewRedisCache("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}

func newTestBadgerCache(t *testing.T) *BadgerCache {
	t.Helper()

	c, err := NewBadgerCache("", true, newDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c
}

func TestCaches_GetSetRoundTrip(t *testing.T) {
	redisCache, _ := newTestRedisCache(t)
	caches := map[string]service.Cache{
		"redis":  redisCache,
		"badger": newTestBadgerCache(t),
	}

	for name, c := range caches {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, found, err := c.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, c.Set(ctx, "k", []byte("v1"), time.Hour))
			require.NoError(t, c.Set(ctx, "k", []byte("v2"), time.Hour))

			value, found, err := c.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, []byte("v2"), value, "last write wins")
		})
	}
}

func TestRedisCache_Expiry(t *testing.T) {
	c, mr := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", []byte("x"), 5*time.Minute))

	mr.FastForward(4 * time.Minute)
	_, found, err := c.Get(ctx, "short")
	require.NoError(t, err)
	assert.True(t, found)

	mr.FastForward(2 * time.Minute)
	_, found, err = c.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_ErrorsWhenServerGone(t *testing.T) {
	c, mr := newTestRedisCache(t)
	mr.Close()

	_, _, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestNewRedisCache_RequiresURL(t *testing.T) {
	_, err := NewRedisCache("")
	assert.Error(t, err)

	_, err = NewRedisCache("://bad")
	assert.Error(t, err)
}

func TestBadgerCache_Expiry(t *testing.T) {
	c := newTestBadgerCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "gone", []byte("x"), time.Second))
	require.NoError(t, c.Set(ctx, "kept", []byte("y"), 0))

	assert.Eventually(t, func() bool {
		_, found, err := c.Get(ctx, "gone")

		return err == nil && !found
	}, 5*time.Second, 100*time.Millisecond)

	value, found, err := c.Get(ctx, "kept")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("y"), value)
}

func TestWithPrefix(t *testing.T) {
	c, mr := newTestRedisCache(t)
	ctx := context.Background()

	prefixed := WithPrefix(c, "leadforge:")
	require.NoError(t, prefixed.Set(ctx, "k", []byte("v"), time.Minute))

	assert.True(t, mr.Exists("leadforge:k"))

	value, found, err := prefixed.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), value)

	assert.Same(t, service.Cache(c), WithPrefix(c, ""))
}
