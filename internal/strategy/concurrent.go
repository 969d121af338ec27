package strategy

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/XenosWarlocks/Read-Write-Analysis/internal/company"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/probe"
)

// Concurrent launches every company's probe at once and lets the engine's
// slot pool be the only bound on simultaneously outstanding network
// calls. There is no worker pool size to also satisfy.
type Concurrent struct {
	engine *probe.Engine
}

// NewConcurrent constructs the all-at-once driver.
func NewConcurrent(engine *probe.Engine) *Concurrent {
	return &Concurrent{engine: engine}
}

// Name implements Strategy.
func (c *Concurrent) Name() string { return NameConcurrent }

// Run gathers one goroutine per company. Each goroutine writes its own
// slice index, so no further synchronization is needed on results.
func (c *Concurrent) Run(ctx context.Context, companies []company.Record) ([]probe.Result, error) {
	results := make([]probe.Result, len(companies))
	started := make([]bool, len(companies))

	g := new(errgroup.Group)
	for i, rec := range companies {
		i, rec := i, rec
		if ctx.Err() != nil {
			break
		}
		started[i] = true
		g.Go(func() error {
			results[i] = c.engine.Probe(ctx, rec, company.Candidates(rec))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]probe.Result, 0, len(companies))
	for i, ok := range started {
		if ok {
			out = append(out, results[i])
		}
	}
	return out, nil
}
