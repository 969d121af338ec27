// Package probe drives ordered candidate-URL attempts for single companies.
package probe

import (
	"time"

	"github.com/XenosWarlocks/Read-Write-Analysis/internal/company"
)

// Attempt is the Result-style outcome of one candidate URL try. It is
// transient: the engine decides on it and moves on, it is not retained.
type Attempt struct {
	URL        string
	StatusCode int
	Latency    time.Duration
	Err        error
}

// Responded reports whether the attempt produced any HTTP response.
func (a Attempt) Responded() bool {
	return a.Err == nil
}

// Result is the single outcome produced for a company in a batch run.
// Succeeded is true iff some candidate returned an HTTP response — any
// status code, 4xx and 5xx included, because reachability rather than
// success semantics is being measured. ChosenURL is the first candidate
// that responded; it is empty when every candidate failed.
type Result struct {
	Company    company.Record `json:"company"`
	ChosenURL  string         `json:"chosen_url,omitempty"`
	StatusCode int            `json:"status_code,omitempty"`
	Elapsed    time.Duration  `json:"elapsed"`
	Succeeded  bool           `json:"succeeded"`
	Attempts   int            `json:"attempts"`
}

// Clock abstracts time for deterministic engine tests.
type Clock interface {
	Now() time.Time
}
