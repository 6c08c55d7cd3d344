package requests

import (
	"sync"
	"tilttracker/pkg/config"
	"time"
)

// Single riot rate limiting window.
type riotLimit struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full riot rate limit, containing all the constraints.
type RateLimiter struct {
	windows []*riotLimit
	mu      sync.Mutex
}

// Create a instance of the rate limiter from the configured windows.
func CreateRateLimiter() *RateLimiter {
	now := time.Now()
	return &RateLimiter{
		windows: []*riotLimit{
			{
				limit:         config.Limits.Lower.Count,
				resetInterval: config.Limits.Lower.ResetInterval,
				lastReset:     now,
			},
			{
				limit:         config.Limits.Higher.Count,
				resetInterval: config.Limits.Higher.ResetInterval,
				lastReset:     now,
			},
		},
	}
}

// Reset any window whose interval has elapsed.
func (r *RateLimiter) resetCounts() {
	now := time.Now()
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if every window still has budget.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Consume one request from every window.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// tryAcquire consumes a slot if every window allows it.
// When it can't, returns how long to wait for the most distant reset.
func (r *RateLimiter) tryAcquire() (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	if r.checkLimits() {
		r.incrementCounts()
		return true, 0
	}

	var waitTime time.Duration
	for _, window := range r.windows {
		if window.count < window.limit {
			continue
		}

		waitTill := window.resetInterval - time.Since(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}

	return false, waitTime
}

// WaitApi blocks until a request slot is available.
func (r *RateLimiter) WaitApi() {
	for {
		acquired, waitTime := r.tryAcquire()
		if acquired {
			return
		}
		time.Sleep(waitTime)
	}
}
