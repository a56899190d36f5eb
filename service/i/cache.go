package i

import "context"

// MazeCache stores hex dumps of seeded mazes.
type MazeCache interface {
	// Get returns the cached value and whether it was found.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key with the cache's TTL.
	Set(ctx context.Context, key, value string) error

	// Lock takes a distributed lock for key. The returned func releases it.
	Lock(ctx context.Context, key string) (func(), error)
}
