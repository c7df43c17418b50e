package cache

import (
	"context"
	"time"

	"github.com/planarkit/planarkit/pkg/observability"
)

// hookedCache wraps a Cache and reports operations to the registered
// observability hooks.
type hookedCache struct {
	inner   Cache
	keyType string
}

// WithHooks wraps a cache so that hits, misses, and writes are reported
// through observability.Cache(). The keyType labels the events, typically
// "embedding", "sefe", or "render".
func WithHooks(inner Cache, keyType string) Cache {
	return &hookedCache{inner: inner, keyType: keyType}
}

func (c *hookedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := c.inner.Get(ctx, key)
	if err == nil {
		if hit {
			observability.Cache().OnCacheHit(ctx, c.keyType)
		} else {
			observability.Cache().OnCacheMiss(ctx, c.keyType)
		}
	}
	return data, hit, err
}

func (c *hookedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := c.inner.Set(ctx, key, data, ttl)
	if err == nil {
		observability.Cache().OnCacheSet(ctx, c.keyType, len(data))
	}
	return err
}

func (c *hookedCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, key)
}

func (c *hookedCache) Close() error {
	return c.inner.Close()
}

// Ensure hookedCache implements Cache.
var _ Cache = (*hookedCache)(nil)
