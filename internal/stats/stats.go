// Package stats summarizes batches of probe results.
package stats

import (
	"errors"
	"sort"
	"time"

	"github.com/XenosWarlocks/Read-Write-Analysis/internal/probe"
)

// ErrNoData is returned when asked to summarize zero results.
var ErrNoData = errors.New("stats: no results to summarize")

// Summary holds aggregate counts and latency statistics for one batch
// run. It is derived data, recomputed per batch, never mutated in place.
type Summary struct {
	Total       int           `json:"total"`
	Succeeded   int           `json:"succeeded"`
	SuccessRate float64       `json:"success_rate"`
	Mean        time.Duration `json:"mean"`
	Median      time.Duration `json:"median"`
	Min         time.Duration `json:"min"`
	Max         time.Duration `json:"max"`
}

// Summarize computes a Summary over results in any order. Elapsed times of
// exhausted probes are included; their failures still consumed time.
func Summarize(results []probe.Result) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, ErrNoData
	}

	elapsed := make([]time.Duration, len(results))
	succeeded := 0
	var total time.Duration
	for i, res := range results {
		elapsed[i] = res.Elapsed
		total += res.Elapsed
		if res.Succeeded {
			succeeded++
		}
	}
	sort.Slice(elapsed, func(i, j int) bool { return elapsed[i] < elapsed[j] })

	return Summary{
		Total:       len(results),
		Succeeded:   succeeded,
		SuccessRate: float64(succeeded) / float64(len(results)) * 100,
		Mean:        total / time.Duration(len(results)),
		Median:      median(elapsed),
		Min:         elapsed[0],
		Max:         elapsed[len(elapsed)-1],
	}, nil
}

func median(sorted []time.Duration) time.Duration {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
