package coordinator

import (
	"sync"
	"time"
)

// StreamLimiter bounds how often a single connection may fire
// stream:request, to keep two disagreeing peers from feeding each other a
// renegotiation storm. Sliding window per connection id.
type StreamLimiter struct {
	mu       sync.Mutex
	history  map[string][]time.Time
	limit    int
	interval time.Duration
}

func NewStreamLimiter(limit int, interval time.Duration) *StreamLimiter {
	return &StreamLimiter{
		history:  make(map[string][]time.Time),
		limit:    limit,
		interval: interval,
	}
}

func (rl *StreamLimiter) Allow(connID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	windowStart := now.Add(-rl.interval)

	attempts := rl.history[connID]

	fresh := make([]time.Time, 0, len(attempts))
	for _, t := range attempts {
		if t.After(windowStart) {
			fresh = append(fresh, t)
		}
	}

	if len(fresh) >= rl.limit {
		rl.history[connID] = fresh
		return false
	}

	fresh = append(fresh, now)
	rl.history[connID] = fresh

	return true
}

// Forget drops the connection's history once it disconnects.
func (rl *StreamLimiter) Forget(connID string) {
	rl.mu.Lock()
	delete(rl.history, connID)
	rl.mu.Unlock()
}
