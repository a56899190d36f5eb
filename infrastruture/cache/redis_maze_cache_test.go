package cache

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient connects to REDIS_TEST_ADDR or skips the test.
func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestNewRedisMazeCache(t *testing.T) {
	_, err := NewRedisMazeCache(nil, 60)
	assert.Error(t, err)

	_, err = NewRedisMazeCache(redis.NewClient(&redis.Options{}), 0)
	assert.Error(t, err)
}

func TestRedisMazeCache(t *testing.T) {
	client := newTestClient(t)
	c, err := NewRedisMazeCache(client, 60)
	require.NoError(t, err)

	ctx := context.Background()
	key := "test:" + uuid.NewString()
	t.Cleanup(func() { _ = client.Del(ctx, keyPrefix+key).Err() })

	t.Run("Miss", func(t *testing.T) {
		_, found, err := c.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Set then get", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, key, "D3\nD6\n"))

		value, found, err := c.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "D3\nD6\n", value)

		ttl, err := client.TTL(ctx, keyPrefix+key).Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
	})

	t.Run("Lock and release", func(t *testing.T) {
		unlock, err := c.Lock(ctx, key)
		require.NoError(t, err)
		unlock()

		unlock, err = c.Lock(ctx, key)
		require.NoError(t, err)
		unlock()
	})
}
