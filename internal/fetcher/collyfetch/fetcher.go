// Package collyfetch implements fetcher.Fetcher using the Colly collector.
package collyfetch

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/XenosWarlocks/Read-Write-Analysis/internal/fetcher"
)

// Config controls collector behavior.
type Config struct {
	UserAgent string
	Timeout   time.Duration
	// Transport overrides the HTTP transport; tests inject a stub here.
	Transport http.RoundTripper
}

// Fetcher issues single GET probes through a Colly collector. Robots
// handling and revisit tracking are disabled: a reachability probe wants
// the raw status line, nothing more.
//
// Every Fetch builds its own collector and HTTP client. Cloned collectors
// share one backend, so a per-attempt SetRequestTimeout on a clone would
// race with other goroutines' in-flight requests and leak one attempt's
// deadline into another's.
type Fetcher struct {
	cfg       Config
	transport http.RoundTripper
}

// New builds a Fetcher. The transport is shared across fetches; it must
// be safe for concurrent use.
func New(cfg Config) *Fetcher {
	transport := cfg.Transport
	if transport == nil {
		transport = newHTTPTransport()
	}
	return &Fetcher{cfg: cfg, transport: transport}
}

// Fetch executes a single HTTP GET. The context deadline, when present,
// bounds the whole request; otherwise the configured timeout applies.
func (f *Fetcher) Fetch(ctx context.Context, url string) (fetcher.Response, error) {
	var (
		result   fetcher.Response
		fetchErr error
	)
	start := time.Now()
	collector := f.buildCollector(ctx, start, &result, &fetchErr)

	if err := f.runCollector(ctx, collector, url, &fetchErr); err != nil {
		return fetcher.Response{}, err
	}
	return result, nil
}

func (f *Fetcher) buildCollector(
	ctx context.Context,
	start time.Time,
	result *fetcher.Response,
	fetchErr *error,
) *colly.Collector {
	// colly v2.1.0's Async option ignores its argument and always enables
	// async mode; rely on the synchronous default instead.
	collector := colly.NewCollector()
	collector.IgnoreRobotsTxt = true
	collector.AllowURLRevisit = true
	// Error statuses are responses too; a 404 still proves something answers.
	collector.ParseHTTPErrorResponse = true
	if f.cfg.UserAgent != "" {
		collector.UserAgent = f.cfg.UserAgent
	}

	timeout := f.cfg.Timeout
	if timeout == 0 {
		timeout = 3 * time.Second
	}
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	collector.SetRequestTimeout(timeout)
	collector.WithTransport(f.transport)

	collector.OnResponse(func(r *colly.Response) {
		*result = fetcher.Response{
			URL:        r.Request.URL.String(),
			StatusCode: r.StatusCode,
			Header:     r.Headers.Clone(),
			Latency:    time.Since(start),
		}
	})

	collector.OnError(func(_ *colly.Response, err error) {
		*fetchErr = err
	})

	return collector
}

func (f *Fetcher) runCollector(ctx context.Context, collector *colly.Collector, url string, fetchErr *error) error {
	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(url)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("probe fetch canceled: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("probe visit failed: %w", err)
		}
		if *fetchErr != nil {
			return fmt.Errorf("probe response failed: %w", *fetchErr)
		}
		return nil
	}
}

func newHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
	}
}
