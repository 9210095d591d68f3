// ABOUTME: Tests for the ANSI SGR to lipgloss bridge
// ABOUTME: Checks color extraction, background detection and the per-theme cache

package interactive

import (
	"testing"

	"github.com/mauromedda/pi-mention-go/pkg/tui/theme"
)

func TestExtractColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want string
		bg   bool
	}{
		{code: "\x1b[38;5;208m", want: "208"},
		{code: "\x1b[48;5;236m", want: "236", bg: true},
		{code: "\x1b[31m", want: "1"},
		{code: "\x1b[90m", want: "8"},
		{code: "\x1b[100m", want: "8", bg: true},
		{code: "\x1b[1m", want: ""},
		{code: "\x1b[1m\x1b[38;5;214m", want: "214"},
		{code: "", want: ""},
	}
	for _, tt := range tests {
		if got := extractColor(tt.code); got != tt.want {
			t.Errorf("extractColor(%q) = %q; want %q", tt.code, got, tt.want)
		}
		if got := isBackground(tt.code); got != tt.bg {
			t.Errorf("isBackground(%q) = %v; want %v", tt.code, got, tt.bg)
		}
	}
}

func TestStyles_CachedPerTheme(t *testing.T) {
	_ = Styles()
	e := cachedStyles.Load()
	if e == nil || e.theme != theme.Current() {
		t.Fatal("Styles() did not cache for the current theme")
	}
	_ = Styles()
	if cachedStyles.Load() != e {
		t.Error("Styles() rebuilt for an unchanged theme")
	}
}
