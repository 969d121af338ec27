// Package fetcher defines the network boundary for probe requests.
package fetcher

import (
	"context"
	"net/http"
	"time"
)

// Response is what a single HTTP GET produced. Any status code counts;
// reachability, not success semantics, is being measured.
type Response struct {
	URL        string
	StatusCode int
	Header     http.Header
	Latency    time.Duration
}

// Fetcher issues one HTTP GET against a candidate URL. Implementations
// convert every network-layer failure into an error return; they never
// panic across this boundary.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Response, error)
}
