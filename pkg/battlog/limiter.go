package battlog

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore hands out one token bucket per key. Keys are client
// addresses on the REST surface and battery ids on the gRPC surface.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[key] = limiter
	}
	return limiter
}

// Allow takes one token from key's bucket. A nil store allows everything.
func (s *RateLimiterStore) Allow(key string) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(key).Allow()
}
