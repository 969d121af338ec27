package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/XenosWarlocks/Read-Write-Analysis/internal/api"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/app"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/company"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/logging"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/metrics"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/report"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/stats"
)

var deadlineFlag time.Duration

// newCheckCmd creates the 'check' subcommand, which runs every configured
// strategy over the company list and writes a batch report.
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Runs the reachability prober",
		Long: `Reads the configured company list, derives candidate URLs per
company and probes them with each configured strategy, writing results
and a per-strategy summary to the report directory.`,
		RunE: runCheckCommand,
	}
	cmd.Flags().DurationVar(&deadlineFlag, "deadline", 0, "optional overall batch deadline (0 disables)")
	return cmd
}

func runCheckCommand(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	batchID := uuid.NewString()
	logger = logging.WithBatch(logger, batchID)

	application, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("init application: %w", err)
	}

	if cfg.Server.Enabled {
		srv := api.NewServer(cfg.Server.Port, logger)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if serr := srv.Shutdown(shutdownCtx); serr != nil {
				logger.Warn("observability server shutdown failed", zap.Error(serr))
			}
		}()
	}

	names, err := company.LoadList(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("load companies: %w", err)
	}
	companies := company.Records(names)
	logger.Info("company list loaded",
		zap.String("path", cfg.Input.Path),
		zap.Int("companies", len(companies)),
	)

	ctx := cmd.Context()
	if deadlineFlag > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, deadlineFlag)
		defer cancel()
	}

	sections := make([]report.Section, 0, len(application.Strategies))
	for _, strat := range application.Strategies {
		start := time.Now()
		results, err := strat.Run(ctx, companies)
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("run %s strategy: %w", strat.Name(), err)
		}
		wall := time.Since(start)
		metrics.ObserveBatch(strat.Name(), wall)

		summary, err := stats.Summarize(results)
		if err != nil {
			if errors.Is(err, stats.ErrNoData) {
				logger.Warn("no results to summarize", zap.String("strategy", strat.Name()))
				continue
			}
			return fmt.Errorf("summarize %s results: %w", strat.Name(), err)
		}

		logger.Info("strategy finished",
			zap.String("strategy", strat.Name()),
			zap.Duration("wall_clock", wall),
			zap.Int("companies", summary.Total),
			zap.Int("reachable", summary.Succeeded),
			zap.Float64("success_rate", summary.SuccessRate),
			zap.Duration("mean", summary.Mean),
			zap.Duration("median", summary.Median),
			zap.Duration("min", summary.Min),
			zap.Duration("max", summary.Max),
		)

		if _, err := application.Reports.WriteResults(batchID, strat.Name(), results); err != nil {
			return fmt.Errorf("write %s results: %w", strat.Name(), err)
		}
		sections = append(sections, report.Section{
			Strategy:  strat.Name(),
			Summary:   summary,
			WallClock: wall,
		})
	}

	logSpeedups(logger, sections)

	if len(sections) > 0 {
		path, err := application.Reports.WriteWorkbook(batchID, sections)
		if err != nil {
			return fmt.Errorf("write summary workbook: %w", err)
		}
		logger.Info("summary workbook written", zap.String("path", path))
	}
	return nil
}

// logSpeedups reports each strategy's wall clock relative to the fastest.
func logSpeedups(logger *zap.Logger, sections []report.Section) {
	if len(sections) < 2 {
		return
	}
	fastest := sections[0].WallClock
	for _, sec := range sections[1:] {
		if sec.WallClock < fastest {
			fastest = sec.WallClock
		}
	}
	if fastest <= 0 {
		return
	}
	for _, sec := range sections {
		logger.Info("relative performance",
			zap.String("strategy", sec.Strategy),
			zap.Duration("wall_clock", sec.WallClock),
			zap.Float64("speedup_vs_fastest", float64(sec.WallClock)/float64(fastest)),
		)
	}
}
