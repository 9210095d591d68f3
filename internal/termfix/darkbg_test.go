// ABOUTME: Tests for the background override
// ABOUTME: Not parallel: lipgloss keeps the setting globally

package termfix

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSetForTheme(t *testing.T) {
	t.Cleanup(func() { SetForTheme("dark") })

	if !lipgloss.HasDarkBackground() {
		t.Error("init did not assume a dark background")
	}
	SetForTheme("light")
	if lipgloss.HasDarkBackground() {
		t.Error("light theme still reports a dark background")
	}
	SetForTheme("monochrome")
	if !lipgloss.HasDarkBackground() {
		t.Error("monochrome should keep the dark default")
	}
}
