package battlog

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterStore_Basic(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	limiter := store.GetLimiter("127.0.0.1")
	require.NotNil(t, limiter)
	assert.Equal(t, 1.0, float64(limiter.Limit()))
	assert.Equal(t, 2, limiter.Burst())
	assert.Same(t, limiter, store.GetLimiter("127.0.0.1"))
}

func TestRateLimiterStore_Concurrency(t *testing.T) {
	store := NewRateLimiterStore(10, 5)
	batteryID := uuid.NewString()

	var wg sync.WaitGroup
	seen := make(chan any, 100)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- store.GetLimiter(batteryID)
		}()
	}
	wg.Wait()
	close(seen)

	first := store.GetLimiter(batteryID)
	for limiter := range seen {
		assert.Same(t, first, limiter)
	}
}

func TestRateLimiter_Enforcement(t *testing.T) {
	store := NewRateLimiterStore(2, 2) // 2 events/sec

	key := uuid.NewString()
	require.True(t, store.Allow(key))
	require.True(t, store.Allow(key))
	assert.False(t, store.Allow(key), "third call should be rate limited")
	assert.True(t, store.Allow(uuid.NewString()), "other keys have their own bucket")

	time.Sleep(600 * time.Millisecond)
	assert.True(t, store.Allow(key), "one token should be available after refill")
}

func TestNilRateLimiterStoreAllows(t *testing.T) {
	var store *RateLimiterStore
	assert.True(t, store.Allow("anything"))
}
