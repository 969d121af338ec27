package report

import (
	"bufio"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/XenosWarlocks/Read-Write-Analysis/internal/company"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/probe"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/stats"
)

func sampleResults() []probe.Result {
	return []probe.Result{
		{
			Company:    company.NewRecord("Acme Inc."),
			ChosenURL:  "https://www.acme.com",
			StatusCode: 200,
			Elapsed:    120 * time.Millisecond,
			Succeeded:  true,
			Attempts:   1,
		},
		{
			Company:   company.NewRecord("Bad News, Inc."),
			Elapsed:   950 * time.Millisecond,
			Succeeded: false,
			Attempts:  6,
		},
	}
}

func TestWriteResultsEmitsOneLinePerResult(t *testing.T) {
	t.Parallel()

	w, err := NewWriter(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	path, err := w.WriteResults("batch-1", "sequential", sampleResults())
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var decoded []probe.Result
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var res probe.Result
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &res))
		decoded = append(decoded, res)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, decoded, 2)
	require.Equal(t, "Acme Inc.", decoded[0].Company.Original)
	require.Equal(t, "Acme", decoded[0].Company.Normalized)
	require.True(t, decoded[0].Succeeded)
	require.Equal(t, "https://www.acme.com", decoded[0].ChosenURL)
	require.False(t, decoded[1].Succeeded)
	require.Empty(t, decoded[1].ChosenURL)
}

func TestWriteResultsEmptyBatch(t *testing.T) {
	t.Parallel()

	w, err := NewWriter(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	path, err := w.WriteResults("batch-2", "pooled", nil)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Zero(t, info.Size())
}

func TestWriteWorkbook(t *testing.T) {
	t.Parallel()

	w, err := NewWriter(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	sections := []Section{
		{
			Strategy: "sequential",
			Summary: stats.Summary{
				Total: 2, Succeeded: 1, SuccessRate: 50,
				Mean: 535 * time.Millisecond, Median: 535 * time.Millisecond,
				Min: 120 * time.Millisecond, Max: 950 * time.Millisecond,
			},
			WallClock: 1100 * time.Millisecond,
		},
		{
			Strategy:  "concurrent",
			Summary:   stats.Summary{Total: 2, Succeeded: 1, SuccessRate: 50},
			WallClock: 400 * time.Millisecond,
		},
	}

	path, err := w.WriteWorkbook("batch-3", sections)
	require.NoError(t, err)

	book, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer book.Close()

	require.Equal(t, []string{"Summary"}, book.GetSheetList())

	header, err := book.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	require.Equal(t, "Strategy", header)

	first, err := book.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	require.Equal(t, "sequential", first)

	second, err := book.GetCellValue("Summary", "A3")
	require.NoError(t, err)
	require.Equal(t, "concurrent", second)
}

func TestNewWriterCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir() + "/nested/reports"
	_, err := NewWriter(dir, zap.NewNop())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
