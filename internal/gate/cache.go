package gate

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is the time-boxed memoization of a successful identity verification.
// It lives in process memory only and is never persisted.
type Cache interface {
	// Verified reports whether a verification is cached and not yet expired.
	Verified(ctx context.Context) bool
	// MarkVerified records a successful verification valid for ttl.
	MarkVerified(ctx context.Context, ttl time.Duration)
	Clear(ctx context.Context)
}

const verifiedKey = "verified"

// MemoryCache is the default Cache. Expiry is passive: an expired entry is
// simply no longer returned. Safe for concurrent use.
type MemoryCache struct {
	entries *gocache.Cache
}

var _ = Cache(&MemoryCache{})

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: gocache.New(gocache.NoExpiration, time.Minute),
	}
}

func (c *MemoryCache) Verified(_ context.Context) bool {
	_, ok := c.entries.Get(verifiedKey)
	return ok
}

func (c *MemoryCache) MarkVerified(_ context.Context, ttl time.Duration) {
	if ttl <= 0 {
		c.entries.Delete(verifiedKey)
		return
	}

	c.entries.Set(verifiedKey, time.Now().Add(ttl), ttl)
}

func (c *MemoryCache) Clear(_ context.Context) {
	c.entries.Delete(verifiedKey)
}
