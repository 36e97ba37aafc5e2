package gate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/paymesh/session-gate/internal/gate"
)

func TestMemoryCache(t *testing.T) {
	cache := gate.NewMemoryCache()

	assert.False(t, cache.Verified(t.Context()), "fresh cache starts unverified")

	cache.MarkVerified(t.Context(), time.Minute)
	assert.True(t, cache.Verified(t.Context()))

	cache.Clear(t.Context())
	assert.False(t, cache.Verified(t.Context()))

	// Clearing an empty cache is fine.
	cache.Clear(t.Context())
	assert.False(t, cache.Verified(t.Context()))
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := gate.NewMemoryCache()

	cache.MarkVerified(t.Context(), 5*time.Millisecond)
	assert.True(t, cache.Verified(t.Context()))

	time.Sleep(25 * time.Millisecond)
	assert.False(t, cache.Verified(t.Context()), "expired entry counts as unverified")
}

func TestMemoryCache_NonPositiveTTL(t *testing.T) {
	cache := gate.NewMemoryCache()

	cache.MarkVerified(t.Context(), time.Minute)
	cache.MarkVerified(t.Context(), 0)

	assert.False(t, cache.Verified(t.Context()), "a non-positive ttl must not keep the entry alive")
}
