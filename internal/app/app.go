// Package app wires configuration into the services a batch run needs.
package app

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/XenosWarlocks/Read-Write-Analysis/internal/clock/system"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/config"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/fetcher/collyfetch"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/metrics"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/policy/ratelimit"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/policy/slots"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/probe"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/report"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/strategy"
)

// App holds the shared services for one batch run. The limiters are
// created fresh here and discarded with the App, so concurrent runs
// (tests included) never share throttling state.
type App struct {
	Logger     *zap.Logger
	Engine     *probe.Engine
	Strategies []strategy.Strategy
	Reports    *report.Writer
}

// Option overrides pieces of the default wiring.
type Option func(*options)

type options struct {
	transport http.RoundTripper
}

// WithTransport injects a custom HTTP transport, used by tests to stub
// the network.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// New assembles an App from validated configuration. It fails fast: any
// invalid limiter or pool parameter surfaces here, before probing.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	metrics.Init()

	pool, err := slots.New(cfg.Probe.MaxConcurrent)
	if err != nil {
		return nil, fmt.Errorf("init slot pool: %w", err)
	}
	limiter := ratelimit.New(cfg.MinInterval())

	f := collyfetch.New(collyfetch.Config{
		UserAgent: cfg.HTTP.UserAgent,
		Timeout:   cfg.Timeout(),
		Transport: o.transport,
	})

	engine := probe.NewEngine(f, limiter, pool, system.New(), cfg.Timeout(), logger)

	strategies, err := buildStrategies(cfg, engine, logger)
	if err != nil {
		return nil, err
	}

	reports, err := report.NewWriter(cfg.Report.OutputDir, logger)
	if err != nil {
		return nil, fmt.Errorf("init report writer: %w", err)
	}

	return &App{
		Logger:     logger,
		Engine:     engine,
		Strategies: strategies,
		Reports:    reports,
	}, nil
}

func buildStrategies(cfg config.Config, engine *probe.Engine, logger *zap.Logger) ([]strategy.Strategy, error) {
	out := make([]strategy.Strategy, 0, len(cfg.Strategies))
	for _, name := range cfg.Strategies {
		switch name {
		case strategy.NameSequential:
			out = append(out, strategy.NewSequential(engine))
		case strategy.NamePooled:
			pooled, err := strategy.NewPooled(engine, cfg.Pool.Workers, logger)
			if err != nil {
				return nil, fmt.Errorf("init pooled strategy: %w", err)
			}
			out = append(out, pooled)
		case strategy.NameConcurrent:
			out = append(out, strategy.NewConcurrent(engine))
		default:
			return nil, fmt.Errorf("unknown strategy %q", name)
		}
	}
	return out, nil
}
