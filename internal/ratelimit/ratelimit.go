// Package ratelimit spaces outbound HTTP requests so consecutive source
// fetches do not hammer the news sites.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Pacer enforces a minimum interval between requests.
type Pacer struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

func New(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Wait blocks until the interval since the previous request has elapsed or
// the context is cancelled. The first call never waits.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	now := time.Now()
	var wait time.Duration
	if now.Before(p.next) {
		wait = p.next.Sub(now)
	}
	p.next = now.Add(wait + p.interval)
	p.mu.Unlock()

	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
