package crawl

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"docdex"
)

var _ docdex.HostLimiter = (*HostLimiter)(nil)

// HostLimiter spaces out requests per host using token buckets. Each
// host gets its own limiter with a burst of 1, so the first request to a
// host proceeds immediately and every subsequent one waits out the
// configured delay.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	delay    time.Duration
}

// NewHostLimiter creates a HostLimiter with the given minimum delay
// between requests to the same host. A zero delay disables limiting.
func NewHostLimiter(delay time.Duration) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		delay:    delay,
	}
}

// Wait blocks until a request to host is allowed.
// Returns an error if the context is canceled before the wait completes.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(l.delay), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
