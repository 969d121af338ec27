package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/XenosWarlocks/Read-Write-Analysis/internal/company"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/config"
	"github.com/XenosWarlocks/Read-Write-Analysis/internal/stats"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// acmeOnlyTransport answers 200 for any acme host and refuses the rest.
func acmeOnlyTransport() http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if !strings.Contains(req.URL.Host, "acme") {
			return nil, errors.New("dial tcp: no such host")
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     http.StatusText(http.StatusOK),
			Header:     http.Header{"Content-Type": []string{"text/html"}},
			Body:       io.NopCloser(strings.NewReader("<html></html>")),
			Request:    req,
		}, nil
	})
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Config{
		Input:      config.InputConfig{Path: "companies.txt"},
		Probe:      config.ProbeConfig{TimeoutSeconds: 1, MaxConcurrent: 10, MinIntervalMs: 0},
		HTTP:       config.HTTPConfig{UserAgent: "prober-test/1.0"},
		Pool:       config.PoolConfig{Workers: 4},
		Report:     config.ReportConfig{OutputDir: t.TempDir()},
		Strategies: []string{"sequential", "pooled", "concurrent"},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestNewBuildsConfiguredStrategies(t *testing.T) {
	t.Parallel()

	application, err := New(testConfig(t), zap.NewNop(), WithTransport(acmeOnlyTransport()))
	require.NoError(t, err)
	require.Len(t, application.Strategies, 3)
	require.Equal(t, "sequential", application.Strategies[0].Name())
	require.Equal(t, "pooled", application.Strategies[1].Name())
	require.Equal(t, "concurrent", application.Strategies[2].Name())
	require.NotNil(t, application.Engine)
	require.NotNil(t, application.Reports)
}

func TestNewRejectsUnknownStrategy(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Strategies = []string{"sequential", "warp"}
	_, err := New(cfg, zap.NewNop())
	require.Error(t, err)
	require.Contains(t, err.Error(), "warp")
}

func TestNewRejectsInvalidPoolCapacity(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Probe.MaxConcurrent = 0
	_, err := New(cfg, zap.NewNop())
	require.Error(t, err)
}

// Probes "Acme Inc." and "Bad News, Inc." against a stub network where
// only acme hosts answer, and checks every strategy lands on the same
// half-reachable summary.
func TestBatchHalfReachable(t *testing.T) {
	t.Parallel()

	application, err := New(testConfig(t), zap.NewNop(), WithTransport(acmeOnlyTransport()))
	require.NoError(t, err)

	companies := company.Records([]string{"Acme Inc.", "Bad News, Inc."})

	for _, strat := range application.Strategies {
		t.Run(strat.Name(), func(t *testing.T) {
			results, err := strat.Run(context.Background(), companies)
			require.NoError(t, err)
			require.Len(t, results, 2)

			summary, err := stats.Summarize(results)
			require.NoError(t, err)
			require.Equal(t, 2, summary.Total)
			require.Equal(t, 1, summary.Succeeded)
			require.Equal(t, float64(50), summary.SuccessRate)
			require.LessOrEqual(t, summary.Min, summary.Median)
			require.LessOrEqual(t, summary.Median, summary.Max)

			for _, res := range results {
				switch res.Company.Original {
				case "Acme Inc.":
					require.True(t, res.Succeeded)
					require.Equal(t, "https://www.acme.com", res.ChosenURL)
					require.Equal(t, http.StatusOK, res.StatusCode)
					require.Equal(t, 1, res.Attempts)
				case "Bad News, Inc.":
					require.False(t, res.Succeeded)
					require.Empty(t, res.ChosenURL)
					require.Equal(t, 6, res.Attempts)
				default:
					t.Fatalf("unexpected company %q", res.Company.Original)
				}
			}

			path, err := application.Reports.WriteResults("batch-test", strat.Name(), results)
			require.NoError(t, err)
			require.FileExists(t, path)
		})
	}
}

func TestBatchRespectsDeadline(t *testing.T) {
	t.Parallel()

	application, err := New(testConfig(t), zap.NewNop(), WithTransport(acmeOnlyTransport()))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	companies := company.Records([]string{"Acme Inc.", "Bad News, Inc."})
	for _, strat := range application.Strategies {
		results, err := strat.Run(ctx, companies)
		require.NoError(t, err, strat.Name())
		require.Less(t, len(results), 2, strat.Name())
	}
}
