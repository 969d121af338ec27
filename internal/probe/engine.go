package probe

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/XenosWarlocks/Read-Write-Analysis/internal/company"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/fetcher"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/metrics"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/policy/ratelimit"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/policy/slots"
)

// Engine probes one company's candidate URLs in order until one responds
// or all are exhausted. Every dispatch passes through the shared rate
// limiter and slot pool, regardless of which strategy is driving.
type Engine struct {
	fetcher fetcher.Fetcher
	limiter *ratelimit.Limiter
	pool    *slots.Pool
	clock   Clock
	timeout time.Duration
	logger  *zap.Logger
}

// NewEngine constructs an Engine. All collaborators are required; the
// per-attempt timeout falls back to 3s when unset.
func NewEngine(
	f fetcher.Fetcher,
	limiter *ratelimit.Limiter,
	pool *slots.Pool,
	clock Clock,
	timeout time.Duration,
	logger *zap.Logger,
) *Engine {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		fetcher: f,
		limiter: limiter,
		pool:    pool,
		clock:   clock,
		timeout: timeout,
		logger:  logger,
	}
}

// Probe tries each candidate in order and returns exactly one Result.
// Network failures are converted into "try the next candidate"; the
// absence of any response is a normal, reportable outcome, never an
// error raised past this boundary.
func (e *Engine) Probe(ctx context.Context, rec company.Record, candidates []string) Result {
	start := e.clock.Now()

	attempts := 0
	for _, url := range candidates {
		attempts++
		attempt := e.tryCandidate(ctx, url)

		if attempt.Responded() {
			result := Result{
				Company:    rec,
				ChosenURL:  attempt.URL,
				StatusCode: attempt.StatusCode,
				Elapsed:    e.clock.Now().Sub(start),
				Succeeded:  true,
				Attempts:   attempts,
			}
			metrics.ObserveCompany(true)
			e.logger.Debug("candidate responded",
				zap.String("company", rec.Original),
				zap.String("url", attempt.URL),
				zap.Int("status", attempt.StatusCode),
			)
			return result
		}

		e.logger.Debug("candidate failed",
			zap.String("company", rec.Original),
			zap.String("url", url),
			zap.Error(attempt.Err),
		)

		if ctx.Err() != nil {
			// Batch deadline fired mid-sequence; remaining candidates
			// would fail the same way, so report exhaustion now.
			break
		}
	}

	metrics.ObserveCompany(false)
	return Result{
		Company:   rec,
		Elapsed:   e.clock.Now().Sub(start),
		Succeeded: false,
		Attempts:  attempts,
	}
}

// tryCandidate performs one gated attempt. The slot is held only for the
// duration of the network call and released on every path.
func (e *Engine) tryCandidate(ctx context.Context, url string) Attempt {
	started := time.Now()

	release, err := e.pool.Acquire(ctx)
	if err != nil {
		return Attempt{URL: url, Latency: time.Since(started), Err: err}
	}
	defer release()

	if err := e.limiter.Wait(ctx); err != nil {
		return Attempt{URL: url, Latency: time.Since(started), Err: err}
	}

	metrics.IncInFlight()
	defer metrics.DecInFlight()

	attemptCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.fetcher.Fetch(attemptCtx, url)
	latency := time.Since(started)
	if err != nil {
		metrics.ObserveAttempt("transport_error", latency)
		return Attempt{URL: url, Latency: latency, Err: err}
	}

	metrics.ObserveAttempt("response", latency)
	return Attempt{
		URL:        url,
		StatusCode: resp.StatusCode,
		Latency:    latency,
	}
}
