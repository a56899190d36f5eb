package cache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix   = "amazeing:maze:"
	lockSuffix  = ":lock"
	lockExpiry  = 10 * time.Second
	lockRetries = 64
)

var _ i.MazeCache = &RedisMazeCache{}

// RedisMazeCache stores maze hex dumps in Redis with TTL support.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) (*RedisMazeCache, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if ttlSeconds <= 0 {
		return nil, errors.New("cache TTL must be positive")
	}

	c := &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	c.locker = redsync.New(pool)
	return c, nil
}

// Get returns the dump stored under key.
func (c *RedisMazeCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, expiring after the cache TTL.
func (c *RedisMazeCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, keyPrefix+key, value, c.ttl).Err()
}

// Lock takes the redsync mutex guarding the generation of key.
func (c *RedisMazeCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(keyPrefix+key+lockSuffix,
		redsync.WithExpiry(lockExpiry),
		redsync.WithTries(lockRetries),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}
