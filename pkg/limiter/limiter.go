package limiter

import (
	"sync"
	"time"
)

// MemoryLimiter is a simple in-memory failure-based rate limiter. The form
// guard keys it by client IP: every rejected submission records a failure,
// and an IP that keeps failing within the sliding window gets cut off.
type MemoryLimiter struct {
	mu       sync.Mutex
	history  map[string][]time.Time // key -> failure timestamps
	window   time.Duration
	maxFails int
}

func NewMemoryLimiter(window time.Duration, maxFails int) *MemoryLimiter {
	return &MemoryLimiter{
		history:  make(map[string][]time.Time),
		window:   window,
		maxFails: maxFails,
	}
}

// TooMany reports whether the given key has reached the maximum number of
// failures within the configured window.
func (r *MemoryLimiter) TooMany(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	slice := r.history[key]

	// prune entries outside the window
	pruned := slice[:0]
	for _, t := range slice {
		if now.Sub(t) <= r.window {
			pruned = append(pruned, t)
		}
	}

	r.history[key] = pruned

	return len(pruned) >= r.maxFails
}

// Fail records a failure occurrence for the given key.
func (r *MemoryLimiter) Fail(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history[key] = append(r.history[key], time.Now())
}
