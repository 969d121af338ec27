// Package ratelimit implements the process-wide dispatch gate that spaces
// outbound probe requests.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/XenosWarlocks/Read-Write-Analysis/internal/metrics"
)

// Limiter enforces a minimum interval between successive request
// dispatches. Grants are serialized, so the interval is measured against
// the previous granted acquisition, not per caller. One Limiter is created
// per batch run and shared by every strategy and worker in that run.
type Limiter struct {
	lim *rate.Limiter
}

// New creates a Limiter. A non-positive interval disables spacing.
func New(minInterval time.Duration) *Limiter {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	return &Limiter{lim: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the caller may dispatch, respecting the context.
func (l *Limiter) Wait(ctx context.Context) error {
	start := time.Now()
	if err := l.lim.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	if delay := time.Since(start); delay > time.Millisecond {
		metrics.ObserveRateLimitDelay(delay)
	}
	return nil
}
