// ABOUTME: Lipgloss style bridge from theme.Color ANSI escape codes
// ABOUTME: Parses SGR sequences into lipgloss styles; Styles() returns the UI palette

package interactive

import (
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/pi-mention-go/pkg/tui/theme"
)

type themeStylesEntry struct {
	theme  *theme.Theme
	styles ThemeStyles
}

// cachedStyles is keyed by theme pointer identity.
var cachedStyles atomic.Pointer[themeStylesEntry]

// sgrRe matches a single ANSI SGR sequence like \x1b[38;5;208m.
var sgrRe = regexp.MustCompile(`\x1b\[([\d;]+)m`)

// extractColor returns the lipgloss color value of the last color-bearing
// sequence in code ("208" for 256-color, "1" for basic), or "".
func extractColor(code string) string {
	var result string
	for _, m := range sgrRe.FindAllStringSubmatch(code, -1) {
		if c := parseColorParams(strings.Split(m[1], ";")); c != "" {
			result = c
		}
	}
	return result
}

func parseColorParams(params []string) string {
	if len(params) >= 3 && (params[0] == "38" || params[0] == "48") && params[1] == "5" {
		return params[2]
	}
	if len(params) != 1 {
		return ""
	}
	n, err := strconv.Atoi(params[0])
	if err != nil {
		return ""
	}
	switch {
	case n >= 30 && n <= 37:
		return strconv.Itoa(n - 30)
	case n >= 40 && n <= 47:
		return strconv.Itoa(n - 40)
	case n >= 90 && n <= 97:
		return strconv.Itoa(n - 90 + 8)
	case n >= 100 && n <= 107:
		return strconv.Itoa(n - 100 + 8)
	}
	return ""
}

func isBackground(code string) bool {
	for _, m := range sgrRe.FindAllStringSubmatch(code, -1) {
		params := strings.Split(m[1], ";")
		if len(params) >= 3 && params[0] == "48" && params[1] == "5" {
			return true
		}
		if len(params) == 1 {
			n, err := strconv.Atoi(params[0])
			if err == nil && ((n >= 40 && n <= 47) || (n >= 100 && n <= 107)) {
				return true
			}
		}
	}
	return false
}

// colorToStyle builds a lipgloss.Style from a raw ANSI escape code string.
func colorToStyle(code string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c := extractColor(code); c != "" {
		if isBackground(code) {
			s = s.Background(lipgloss.Color(c))
		} else {
			s = s.Foreground(lipgloss.Color(c))
		}
	}
	for _, m := range sgrRe.FindAllStringSubmatch(code, -1) {
		for p := range strings.SplitSeq(m[1], ";") {
			switch p {
			case "1":
				s = s.Bold(true)
			case "2":
				s = s.Faint(true)
			case "3":
				s = s.Italic(true)
			case "4":
				s = s.Underline(true)
			case "7":
				s = s.Reverse(true)
			}
		}
	}
	return s
}

// ThemeStyles holds pre-built lipgloss styles for the palette roles.
type ThemeStyles struct {
	Text   lipgloss.Style
	Prompt lipgloss.Style
	Token  lipgloss.Style
	Caret  lipgloss.Style

	Panel       lipgloss.Style // bordered box around the suggestion list
	PanelHeader lipgloss.Style
	Candidate   lipgloss.Style
	Secondary   lipgloss.Style
	Selection   lipgloss.Style
	Empty       lipgloss.Style

	Status lipgloss.Style
	Error  lipgloss.Style
}

// Styles returns ThemeStyles for the current theme, rebuilt only when the
// theme pointer changes.
func Styles() ThemeStyles {
	t := theme.Current()
	if e := cachedStyles.Load(); e != nil && e.theme == t {
		return e.styles
	}
	s := buildStyles(t)
	cachedStyles.Store(&themeStylesEntry{theme: t, styles: s})
	return s
}

func buildStyles(t *theme.Theme) ThemeStyles {
	p := t.Palette
	panel := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	if c := extractColor(p.PanelBorder.Code()); c != "" {
		panel = panel.BorderForeground(lipgloss.Color(c))
	}
	return ThemeStyles{
		Text:   colorToStyle(p.Text.Code()),
		Prompt: colorToStyle(p.Prompt.Code()),
		Token:  colorToStyle(p.Token.Code()),
		Caret:  lipgloss.NewStyle().Reverse(true),

		Panel:       panel,
		PanelHeader: colorToStyle(p.PanelHeader.Code()),
		Candidate:   colorToStyle(p.Candidate.Code()),
		Secondary:   colorToStyle(p.Secondary.Code()),
		Selection:   colorToStyle(p.Selection.Code()),
		Empty:       colorToStyle(p.Empty.Code()),

		Status: colorToStyle(p.Status.Code()),
		Error:  colorToStyle(p.Error.Code()),
	}
}
