// ABOUTME: Candidate filtering: case-folded substring match over display name and secondary
// ABOUTME: Stable by construction; optional fuzzy mode still returns roster order

package mention

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/mauromedda/pi-mention-go/pkg/tui/fuzzy"
)

// MatchMode selects how a query is compared to candidate fields.
type MatchMode int

const (
	// MatchSubstring is a case-insensitive substring match.
	MatchSubstring MatchMode = iota
	// MatchFuzzy is a case-insensitive subsequence match ("jna" matches "Joanna").
	MatchFuzzy
)

// ParseMatchMode maps "substring" (or an empty string) and "fuzzy" to a
// MatchMode. Anything else yields MatchSubstring and false.
func ParseMatchMode(s string) (MatchMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "substring", "":
		return MatchSubstring, true
	case "fuzzy":
		return MatchFuzzy, true
	}
	return MatchSubstring, false
}

// String returns the config name of m.
func (m MatchMode) String() string {
	if m == MatchFuzzy {
		return "fuzzy"
	}
	return "substring"
}

// FilterOptions tunes Filter.
type FilterOptions struct {
	MatchSecondary bool      // also match Candidate.Secondary
	MaxResults     int       // 0 = unbounded
	Mode           MatchMode // substring unless configured
}

// Filter returns the candidates of roster matching query, in roster order.
// An empty query matches everything. The result never aliases roster.
func Filter(roster []Candidate, query string, opts FilterOptions) []Candidate {
	var out []Candidate
	switch {
	case query == "":
		out = make([]Candidate, len(roster))
		copy(out, roster)
	case opts.Mode == MatchFuzzy:
		out = filterFuzzy(roster, query, opts)
	default:
		out = filterSubstring(roster, query, opts)
	}
	if opts.MaxResults > 0 && len(out) > opts.MaxResults {
		out = out[:opts.MaxResults:opts.MaxResults]
	}
	return out
}

func filterSubstring(roster []Candidate, query string, opts FilterOptions) []Candidate {
	fold := cases.Fold()
	q := fold.String(query)
	out := make([]Candidate, 0, len(roster))
	for _, c := range roster {
		if strings.Contains(fold.String(c.DisplayName), q) ||
			(opts.MatchSecondary && strings.Contains(fold.String(c.Secondary), q)) {
			out = append(out, c)
		}
	}
	return out
}

func filterFuzzy(roster []Candidate, query string, opts FilterOptions) []Candidate {
	names := make([]string, len(roster))
	for i, c := range roster {
		names[i] = c.DisplayName
	}
	hit := make([]bool, len(roster))
	for _, m := range fuzzy.FindInOrder(query, names) {
		hit[m.Index] = true
	}
	if opts.MatchSecondary {
		secondary := make([]string, len(roster))
		for i, c := range roster {
			secondary[i] = c.Secondary
		}
		for _, m := range fuzzy.FindInOrder(query, secondary) {
			hit[m.Index] = true
		}
	}

	out := make([]Candidate, 0, len(roster))
	for i, c := range roster {
		if hit[i] {
			out = append(out, c)
		}
	}
	return out
}
