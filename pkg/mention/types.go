// ABOUTME: Core value types: candidates, text snapshots, queries, edits, suggestion state
// ABOUTME: SuggestionState is the only mutable state a session owns; hosts get copies

package mention

import "slices"

// Candidate is a mentionable entry from the roster. Identity is ID.
type Candidate struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Secondary   string `json:"secondary,omitempty" yaml:"secondary,omitempty"` // e-mail, role
}

// Token returns the text inserted for c, e.g. "@Ana".
func (c Candidate) Token() string {
	return "@" + c.DisplayName
}

// TextBuffer is a snapshot of a host's plain-text projection.
type TextBuffer struct {
	Text   string
	Cursor int // rune offset into Text
}

// Query is the in-progress mention: the rune index of its '@' and the text
// typed after it.
type Query struct {
	TriggerOffset int
	Text          string
}

// Edit is a text rewrite for the host to apply.
type Edit struct {
	Text   string
	Cursor int // rune offset into Text
}

// SuggestionState is what a host renders.
type SuggestionState struct {
	SessionID    string
	Open         bool
	Query        *Query
	Filtered     []Candidate
	Highlighted  int
	Anchor       *Point
	AnchorLocked bool
	Loading      bool // roster fetch outstanding
}

// HighlightedCandidate returns the highlighted row, if any.
func (s SuggestionState) HighlightedCandidate() (Candidate, bool) {
	if !s.Open || s.Highlighted < 0 || s.Highlighted >= len(s.Filtered) {
		return Candidate{}, false
	}
	return s.Filtered[s.Highlighted], true
}

// clone returns a deep copy so callers cannot alias controller internals.
func (s SuggestionState) clone() SuggestionState {
	out := s
	out.Filtered = slices.Clone(s.Filtered)
	if s.Query != nil {
		q := *s.Query
		out.Query = &q
	}
	if s.Anchor != nil {
		a := *s.Anchor
		out.Anchor = &a
	}
	return out
}
