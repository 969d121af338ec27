package strategy

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/XenosWarlocks/Read-Write-Analysis/internal/company"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/probe"
)

// Pooled dispatches probes to a fixed-size pool of workers, each blocking
// on its own network call. In-flight probes are bounded by the smaller of
// the pool size and the engine's slot capacity.
type Pooled struct {
	engine  *probe.Engine
	workers int
	logger  *zap.Logger
}

// NewPooled constructs the worker-pool driver. The pool size must be
// positive; this is validated here, before any probing begins.
func NewPooled(engine *probe.Engine, workers int, logger *zap.Logger) (*Pooled, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("strategy: worker pool size must be > 0, got %d", workers)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pooled{engine: engine, workers: workers, logger: logger}, nil
}

// Name implements Strategy.
func (p *Pooled) Name() string { return NamePooled }

// Run fans companies out to the worker pool and collects results in
// completion order.
func (p *Pooled) Run(ctx context.Context, companies []company.Record) ([]probe.Result, error) {
	jobs := make(chan company.Record)
	out := make(chan probe.Result, len(companies))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for rec := range jobs {
				out <- p.engine.Probe(ctx, rec, company.Candidates(rec))
			}
			p.logger.Debug("pool worker drained", zap.Int("worker", id))
		}(i)
	}

	for _, rec := range companies {
		if ctx.Err() != nil {
			break
		}
		jobs <- rec
	}
	close(jobs)
	wg.Wait()
	close(out)

	results := make([]probe.Result, 0, len(companies))
	for res := range out {
		results = append(results, res)
	}
	return results, nil
}
