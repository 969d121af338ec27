// Package slots bounds the number of simultaneously in-flight probes.
package slots

import (
	"context"
	"fmt"
)

// Pool is a bounded slot pool backed by a channel semaphore. At most
// capacity slots are held at any instant, system-wide for one batch run.
type Pool struct {
	sem chan struct{}
}

// New creates a Pool. Capacity must be positive.
func New(capacity int) (*Pool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("slots: capacity must be > 0, got %d", capacity)
	}
	return &Pool{sem: make(chan struct{}, capacity)}, nil
}

// Acquire blocks until a slot is free or the context finishes. The
// returned release closure must be called on every exit path; callers
// defer it immediately so failures and cancellations cannot leak a slot.
func (p *Pool) Acquire(ctx context.Context) (func(), error) {
	select {
	case p.sem <- struct{}{}:
		return func() { <-p.sem }, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("slots: acquire canceled: %w", ctx.Err())
	}
}

// Capacity reports the configured bound.
func (p *Pool) Capacity() int {
	return cap(p.sem)
}
