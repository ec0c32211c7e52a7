// Package cachemanager provides a generic TTL cache used to avoid
// re-parsing package libraries on every lookup.
package cachemanager

import (
	"context"
	"time"
)

type CacheManager[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	GetWithRefresh(ctx context.Context, key string, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...string) error
	Flush(ctx context.Context) error
}
