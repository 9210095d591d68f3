// ABOUTME: Tells lipgloss the terminal background up front so it never sends OSC 10/11 queries
// ABOUTME: Imported (with _) by the CLI before the UI; light themes flip the default

package termfix

import "github.com/charmbracelet/lipgloss"

// This package must not import bubbletea, directly or transitively, so its
// init runs before the program starts querying the terminal.
func init() {
	lipgloss.SetHasDarkBackground(true)
}

// SetForTheme records the background the named theme is designed for.
func SetForTheme(name string) {
	lipgloss.SetHasDarkBackground(name != "light")
}
