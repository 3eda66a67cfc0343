// Package cache provides the analysis-result cache: a process-local
// in-memory implementation for the CLI and single-node deployments, and a
// redis-backed one for the server.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with a TTL. A zero TTL
// means no expiry. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
