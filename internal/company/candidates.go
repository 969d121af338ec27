package company

import "strings"

// Candidate URL templates in probe priority order. The order is fixed by
// the generation rule and is never re-sorted downstream.
var urlTemplates = []struct {
	prefix string
	suffix string
}{
	{"https://www.", ".com"},
	{"https://", ".com"},
	{"http://www.", ".com"},
	{"http://", ".com"},
	{"https://", ".net"},
	{"https://www.", ".org"},
}

// Candidates derives the ordered list of URL guesses for a record.
// An empty normalized name still yields syntactically valid (if useless)
// URLs; reachability probing treats them like any other candidate.
func Candidates(rec Record) []string {
	name := strings.ReplaceAll(strings.ToLower(rec.Normalized), " ", "")
	urls := make([]string, 0, len(urlTemplates))
	for _, tpl := range urlTemplates {
		urls = append(urls, tpl.prefix+name+tpl.suffix)
	}
	return urls
}
