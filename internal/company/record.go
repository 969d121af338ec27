// Package company handles company name normalization and candidate URL derivation.
package company

// Record pairs a raw company name with its normalized form.
// Records are immutable once created.
type Record struct {
	Original   string `json:"original_name"`
	Normalized string `json:"normalized_name"`
}

// NewRecord builds a Record, normalizing the raw name once.
func NewRecord(raw string) Record {
	return Record{
		Original:   raw,
		Normalized: Normalize(raw),
	}
}

// Records normalizes a whole list of raw names, preserving order.
func Records(raw []string) []Record {
	out := make([]Record, 0, len(raw))
	for _, name := range raw {
		out = append(out, NewRecord(name))
	}
	return out
}
