// ABOUTME: Internal tea.Msg types for the mention UI
// ABOUTME: Roster delivery, the watcher tick and clipboard results

package interactive

import "github.com/mauromedda/pi-mention-go/pkg/mention"

// rosterLoadedMsg carries a finished roster fetch. A failed fetch arrives as
// an empty roster.
type rosterLoadedMsg struct {
	candidates []mention.Candidate
	reload     bool
}

// watchTickMsg asks the model to poll the roster watcher.
type watchTickMsg struct{}

// clipboardMsg reports a finished copy of n runes.
type clipboardMsg struct {
	n   int
	err error
}
