package company

import (
	"regexp"
	"strings"
	"sync"
)

// Corporate suffixes stripped from the end of a name, applied in this
// order until the string stops changing. A name ending in
// "Corporation Ltd" therefore loses both.
var suffixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+Inc\.?$`),
	regexp.MustCompile(`(?i)\s+Corp\.?$`),
	regexp.MustCompile(`(?i)\s+Incorporated$`),
	regexp.MustCompile(`(?i)\s+Corporation$`),
	regexp.MustCompile(`(?i)\s+Limited$`),
	regexp.MustCompile(`(?i)\s+Ltd\.?$`),
}

const punctuation = `!@#$%^&*()_+-=[]{}|;:,.<>?`

// normalizeCache memoizes Normalize results. Normalization is pure, so the
// cache is an optimization only; a cold cache gives the same answers.
var normalizeCache sync.Map

// Normalize canonicalizes a raw company name into a comparable key.
// It is pure, deterministic and idempotent: Normalize(Normalize(s)) == Normalize(s).
// An empty input yields an empty output.
func Normalize(raw string) string {
	if cached, ok := normalizeCache.Load(raw); ok {
		return cached.(string)
	}

	name := strings.Trim(raw, "\ufeff\"'")

	for {
		prev := name
		for _, pat := range suffixPatterns {
			name = pat.ReplaceAllString(name, "")
		}
		if name == prev {
			break
		}
	}

	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, name)

	name = strings.Join(strings.Fields(name), " ")

	normalizeCache.Store(raw, name)
	return name
}
