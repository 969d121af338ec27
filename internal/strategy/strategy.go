// Package strategy provides interchangeable batch drivers over the probe
// engine. Each driver schedules per-company probes differently but yields
// the same logical result set.
package strategy

import (
	"context"

	"github.com/XenosWarlocks/Read-Write-Analysis/internal/company"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/probe"
)

// Strategy drives the probe engine over a full company list. Probes for
// distinct companies may complete in any order; consumers must not assume
// arrival order. When the context finishes mid-batch, drivers stop
// scheduling new probes and return the partial results with a nil error.
type Strategy interface {
	Name() string
	Run(ctx context.Context, companies []company.Record) ([]probe.Result, error)
}

// Strategy names accepted in configuration.
const (
	NameSequential = "sequential"
	NamePooled     = "pooled"
	NameConcurrent = "concurrent"
)
