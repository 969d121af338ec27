package strategy

import (
	"context"

	"github.com/XenosWarlocks/Read-Write-Analysis/internal/company"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/probe"
)

// Sequential drives one probe to completion before starting the next.
// It is the baseline the concurrent drivers are compared against.
type Sequential struct {
	engine *probe.Engine
}

// NewSequential constructs the sequential driver.
func NewSequential(engine *probe.Engine) *Sequential {
	return &Sequential{engine: engine}
}

// Name implements Strategy.
func (s *Sequential) Name() string { return NameSequential }

// Run probes each company in input order.
func (s *Sequential) Run(ctx context.Context, companies []company.Record) ([]probe.Result, error) {
	results := make([]probe.Result, 0, len(companies))
	for _, rec := range companies {
		if ctx.Err() != nil {
			break
		}
		results = append(results, s.engine.Probe(ctx, rec, company.Candidates(rec)))
	}
	return results, nil
}
