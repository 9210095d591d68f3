// ABOUTME: Human-readable rendering of effective configuration
// ABOUTME: Printed by "pi-mention -explain" to show merged settings and key bindings

package config

import (
	"fmt"
	"slices"
	"strings"
)

// Explain renders a summary of the effective settings and bindings.
func Explain(s *Settings, kb *Keybindings) string {
	if s == nil {
		s = Defaults()
	}
	if kb == nil {
		kb = NewKeybindings()
	}

	var b strings.Builder

	b.WriteString("=== General ===\n")
	fmt.Fprintf(&b, "  LogLevel:    %s\n", s.LogLevel)
	if s.LogFile != "" {
		fmt.Fprintf(&b, "  LogFile:     %s\n", s.LogFile)
	}
	if s.Theme != "" {
		fmt.Fprintf(&b, "  Theme:       %s\n", s.Theme)
	}
	b.WriteString("\n")

	b.WriteString("=== Mention ===\n")
	fmt.Fprintf(&b, "  MatchMode:   %s\n", s.Mention.MatchMode)
	fmt.Fprintf(&b, "  Secondary:   %t\n", s.Mention.MatchSecondary)
	if s.Mention.MaxResults > 0 {
		fmt.Fprintf(&b, "  MaxResults:  %d\n", s.Mention.MaxResults)
	}
	if s.Mention.RequireWordBoundary {
		b.WriteString("  WordBoundary: true\n")
	}
	b.WriteString("\n")

	b.WriteString("=== Panel ===\n")
	fmt.Fprintf(&b, "  Size:        %dx%d (margin %d)\n", s.Panel.Width, s.Panel.Height, s.Panel.Margin)
	if s.Panel.Preview {
		b.WriteString("  Preview:     true\n")
	}
	b.WriteString("\n")

	b.WriteString("=== Roster ===\n")
	for _, f := range s.Roster.Files {
		fmt.Fprintf(&b, "  File:        %s\n", f)
	}
	for _, d := range s.Roster.Dirs {
		fmt.Fprintf(&b, "  Dir:         %s\n", d)
	}
	fmt.Fprintf(&b, "  Concurrency: %d\n", s.Roster.Concurrency)
	if s.Roster.Watch {
		fmt.Fprintf(&b, "  Watch:       every %s\n", s.Roster.WatchInterval)
	}
	b.WriteString("\n")

	b.WriteString("=== Keys ===\n")
	actions := make([]string, 0, len(kb.Bindings))
	for a := range kb.Bindings {
		actions = append(actions, string(a))
	}
	slices.Sort(actions)
	for _, a := range actions {
		fmt.Fprintf(&b, "  %-14s %s\n", a+":", strings.Join(kb.Bindings[KeyAction(a)], ", "))
	}

	return b.String()
}
