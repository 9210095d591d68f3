// ABOUTME: Collaborator contracts: RosterProvider supplies candidates, AttachmentReporter receives commits
// ABOUTME: FetchRoster degrades any provider failure to an empty roster with a single warning

package mention

import (
	"context"

	pilog "github.com/mauromedda/pi-mention-go/internal/log"
)

// RosterProvider loads the full candidate list. It is called once per mount
// (or again while the roster is still empty) and may fail.
type RosterProvider interface {
	FetchAll(ctx context.Context) ([]Candidate, error)
}

// RosterFunc adapts a function to RosterProvider.
type RosterFunc func(ctx context.Context) ([]Candidate, error)

// FetchAll calls f(ctx).
func (f RosterFunc) FetchAll(ctx context.Context) ([]Candidate, error) { return f(ctx) }

// AttachmentReporter receives the full attachment set after every insertion
// or removal. Delivery is fire-and-forget.
type AttachmentReporter interface {
	Report(attachments []Candidate)
}

// ReporterFunc adapts a function to AttachmentReporter.
type ReporterFunc func(attachments []Candidate)

// Report calls f(attachments).
func (f ReporterFunc) Report(attachments []Candidate) { f(attachments) }

// FetchRoster runs p and never fails: errors are logged and an empty roster
// is returned so the panel shows "no matches" instead of an error.
func FetchRoster(ctx context.Context, p RosterProvider) []Candidate {
	if p == nil {
		return nil
	}
	cs, err := p.FetchAll(ctx)
	if err != nil {
		pilog.Warn("mention: roster fetch failed: %v", err)
		return nil
	}
	return cs
}
