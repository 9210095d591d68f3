// ABOUTME: Tests for candidate filtering: order stability, case folding, secondary fields
// ABOUTME: Also covers result caps and the opt-in fuzzy mode

package mention

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var team = []Candidate{
	{ID: "1", DisplayName: "John", Secondary: "john@acme.io"},
	{ID: "2", DisplayName: "Joanna", Secondary: "jo@acme.io"},
	{ID: "3", DisplayName: "Bob", Secondary: "builder"},
	{ID: "4", DisplayName: "alice", Secondary: "ops"},
}

func names(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.DisplayName
	}
	return out
}

func TestFilter_EmptyQueryReturnsRoster(t *testing.T) {
	t.Parallel()

	got := Filter(team, "", FilterOptions{})
	if diff := cmp.Diff(team, got); diff != "" {
		t.Errorf("Filter(\"\") mismatch (-want +got):\n%s", diff)
	}
	got[0].DisplayName = "changed"
	if team[0].DisplayName != "John" {
		t.Error("Filter result aliases the roster")
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		opts  FilterOptions
		want  []string
	}{
		{name: "case insensitive", query: "b", want: []string{"Bob"}},
		{name: "upper query", query: "ALI", want: []string{"alice"}},
		{name: "roster order kept", query: "jo", want: []string{"John", "Joanna"}},
		{name: "secondary ignored by default", query: "acme", want: []string{}},
		{name: "secondary opt in", query: "acme", opts: FilterOptions{MatchSecondary: true}, want: []string{"John", "Joanna"}},
		{name: "max results", query: "o", opts: FilterOptions{MaxResults: 2}, want: []string{"John", "Joanna"}},
		{name: "no match", query: "zed", want: []string{}},
		{name: "fuzzy subsequence", query: "jna", opts: FilterOptions{Mode: MatchFuzzy}, want: []string{"Joanna"}},
		{name: "fuzzy keeps roster order", query: "o", opts: FilterOptions{Mode: MatchFuzzy}, want: []string{"John", "Joanna", "Bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := names(Filter(team, tt.query, tt.opts))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestFilter_SpecPair(t *testing.T) {
	t.Parallel()

	roster := []Candidate{{ID: "b", DisplayName: "Bob"}, {ID: "a", DisplayName: "alice"}}
	got := Filter(roster, "b", FilterOptions{})
	if diff := cmp.Diff([]Candidate{{ID: "b", DisplayName: "Bob"}}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMatchMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   MatchMode
		wantOK bool
	}{
		{in: "", want: MatchSubstring, wantOK: true},
		{in: "substring", want: MatchSubstring, wantOK: true},
		{in: " Fuzzy ", want: MatchFuzzy, wantOK: true},
		{in: "regex", want: MatchSubstring, wantOK: false},
	}
	for _, tt := range tests {
		got, ok := ParseMatchMode(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseMatchMode(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
