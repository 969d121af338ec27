// Package report persists batch results as JSONL and a summary workbook.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/XenosWarlocks/Read-Write-Analysis/internal/probe"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/stats"
)

// Section is one strategy's contribution to the summary workbook.
type Section struct {
	Strategy  string
	Summary   stats.Summary
	WallClock time.Duration
}

// Writer emits per-strategy result files under a single output directory.
type Writer struct {
	dir    string
	logger *zap.Logger
}

// NewWriter creates the output directory if needed.
func NewWriter(dir string, logger *zap.Logger) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{dir: dir, logger: logger}, nil
}

// WriteResults writes one JSON object per probe result, in arrival order.
func (w *Writer) WriteResults(batchID, strategy string, results []probe.Result) (string, error) {
	path := filepath.Join(w.dir, fmt.Sprintf("results_%s_%s.jsonl", batchID, strategy))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create results file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, res := range results {
		if err := enc.Encode(res); err != nil {
			return "", fmt.Errorf("encode result: %w", err)
		}
	}
	if err := f.Sync(); err != nil {
		return "", fmt.Errorf("sync results file: %w", err)
	}
	w.logger.Debug("results written", zap.String("path", path), zap.Int("count", len(results)))
	return path, nil
}

var summaryHeader = []string{
	"Strategy", "Companies", "Reachable", "Success Rate (%)",
	"Mean (s)", "Median (s)", "Min (s)", "Max (s)", "Wall Clock (s)",
}

// WriteWorkbook renders one summary row per strategy into an xlsx file.
func (w *Writer) WriteWorkbook(batchID string, sections []Section) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Summary"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("create summary sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("drop default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &summaryHeader); err != nil {
		return "", fmt.Errorf("write header row: %w", err)
	}

	for i, sec := range sections {
		row := []interface{}{
			sec.Strategy,
			sec.Summary.Total,
			sec.Summary.Succeeded,
			sec.Summary.SuccessRate,
			sec.Summary.Mean.Seconds(),
			sec.Summary.Median.Seconds(),
			sec.Summary.Min.Seconds(),
			sec.Summary.Max.Seconds(),
			sec.WallClock.Seconds(),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", fmt.Errorf("write summary row: %w", err)
		}
	}

	path := filepath.Join(w.dir, fmt.Sprintf("summary_%s.xlsx", batchID))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	w.logger.Debug("workbook written", zap.String("path", path), zap.Int("sections", len(sections)))
	return path, nil
}
