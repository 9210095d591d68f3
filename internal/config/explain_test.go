// ABOUTME: Tests for the effective configuration summary
// ABOUTME: Checks sections and that optional values only show when set

package config

import (
	"strings"
	"testing"
)

func TestExplain_Defaults(t *testing.T) {
	t.Parallel()

	out := Explain(nil, nil)
	for _, want := range []string{"=== General ===", "=== Mention ===", "MatchMode:   substring", "Size:        32x6 (margin 1)", "mentionNext:", "ctrl+n, down"} {
		if !strings.Contains(out, want) {
			t.Errorf("Explain missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Watch:") || strings.Contains(out, "File:") {
		t.Errorf("unset values shown:\n%s", out)
	}
}

func TestExplain_Roster(t *testing.T) {
	t.Parallel()

	s := Defaults()
	s.Roster.Files = []string{"/team.yaml"}
	s.Roster.Watch = true
	out := Explain(s, NewKeybindings())
	if !strings.Contains(out, "File:        /team.yaml") || !strings.Contains(out, "Watch:       every 2s") {
		t.Errorf("roster section:\n%s", out)
	}
}
