package company

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeStripsSuffixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"inc with dot", "Acme Inc.", "Acme"},
		{"inc without dot", "Acme Inc", "Acme"},
		{"corp", "Initech Corp.", "Initech"},
		{"incorporated", "Hooli Incorporated", "Hooli"},
		{"corporation", "Umbrella Corporation", "Umbrella"},
		{"limited", "Wayne Limited", "Wayne"},
		{"ltd", "Stark Ltd.", "Stark"},
		{"stacked suffixes", "Globex Corporation Ltd", "Globex"},
		{"suffix not at end survives", "Inc Magazine", "Inc Magazine"},
		{"case insensitive", "acme INC.", "acme"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalizeCleansPunctuationAndWhitespace(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Bad News", Normalize("Bad News, Inc."))
	require.Equal(t, "ATT", Normalize("AT&T"))
	require.Equal(t, "Acme Widgets", Normalize("  Acme   Widgets  "))
	require.Equal(t, "Acme", Normalize("\ufeff\"Acme\""))
	require.Equal(t, "", Normalize(""))
	require.Equal(t, "", Normalize("!@#$%"))
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Acme Inc.",
		"Bad News, Inc.",
		"Globex Corporation Ltd",
		"  spaced   out  ",
		"",
		"already-normal name",
	}
	for _, raw := range inputs {
		once := Normalize(raw)
		require.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", raw)
	}
}

func TestNormalizeCacheNotObservable(t *testing.T) {
	t.Parallel()

	// Repeated calls (warm cache) must agree with the first (cold) answer.
	first := Normalize("Cache Test Corp.")
	for i := 0; i < 3; i++ {
		require.Equal(t, first, Normalize("Cache Test Corp."))
	}
	require.Equal(t, "Cache Test", first)
}
