// ABOUTME: Suggestion panel rendering and hit-testing at the session's anchor
// ABOUTME: A bordered box with a query header and a scrolling window of candidate rows

package interactive

import (
	"fmt"
	"strings"

	"github.com/mauromedda/pi-mention-go/pkg/mention"
	"github.com/mauromedda/pi-mention-go/pkg/tui/width"
)

// panelChrome is the rows the panel adds around its candidate rows: top
// border, header, bottom border.
const panelChrome = 3

// panelLayout is the panel's fixed box in cells.
type panelLayout struct {
	width int // outer width, borders included
	rows  int // visible candidate rows
}

// size is the box the anchor resolver has to fit.
func (l panelLayout) size() mention.Size {
	return mention.Size{Width: float64(l.width), Height: float64(l.rows + panelChrome)}
}

func (l panelLayout) inner() int { return max(l.width-2, 1) }

// scrollOffset keeps the highlighted row inside a window of n rows.
func scrollOffset(highlighted, total, n int) int {
	if n <= 0 || total <= n {
		return 0
	}
	off := max(highlighted-n+1, 0)
	return min(off, total-n)
}

// renderPanel draws the open session. Rows past the layout height scroll with
// the highlight.
func renderPanel(st mention.SuggestionState, l panelLayout, s ThemeStyles) string {
	inner := l.inner()
	var lines []string

	header := " @"
	if st.Query != nil {
		header += st.Query.Text
	}
	if n := len(st.Filtered); n > 0 {
		header += fmt.Sprintf("  (%d)", n)
	}
	lines = append(lines, s.PanelHeader.Render(width.Pad(width.TruncateToWidth(header, inner), inner)))

	switch {
	case len(st.Filtered) == 0 && st.Loading:
		lines = append(lines, s.Empty.Render(width.Pad(" Loading roster...", inner)))
	case len(st.Filtered) == 0:
		lines = append(lines, s.Empty.Render(width.Pad(" No matches", inner)))
	default:
		off := scrollOffset(st.Highlighted, len(st.Filtered), l.rows)
		end := min(off+l.rows, len(st.Filtered))
		for i := off; i < end; i++ {
			lines = append(lines, formatCandidate(s, st.Filtered[i], inner, i == st.Highlighted))
		}
	}

	return s.Panel.Render(strings.Join(lines, "\n"))
}

// formatCandidate lays out one row: display name on the left, secondary
// right-aligned when there is room for it.
func formatCandidate(s ThemeStyles, c mention.Candidate, w int, selected bool) string {
	name := " " + c.DisplayName
	sec := ""
	if room := w - width.VisibleWidth(name) - 3; c.Secondary != "" && room > 0 {
		sec = width.TruncateToWidth(c.Secondary, room)
	}
	if sec == "" {
		line := width.Pad(width.TruncateToWidth(name, w), w)
		if selected {
			return s.Selection.Render(line)
		}
		return s.Candidate.Render(line)
	}
	left := width.Pad(name, w-width.VisibleWidth(sec)-1)
	if selected {
		return s.Selection.Render(left + sec + " ")
	}
	return s.Candidate.Render(left) + s.Secondary.Render(sec+" ")
}

// panelHit classifies a cell relative to a panel drawn at anchor. row is the
// filtered index under the cell, or -1 for the border and header.
func panelHit(st mention.SuggestionState, l panelLayout, x, y int) (row int, inside bool) {
	if !st.Open || st.Anchor == nil {
		return -1, false
	}
	ax, ay := int(st.Anchor.X), int(st.Anchor.Y)
	shown := max(min(len(st.Filtered), l.rows), 1)
	height := shown + panelChrome
	if x < ax || x >= ax+l.width || y < ay || y >= ay+height {
		return -1, false
	}
	i := y - ay - 2
	if i < 0 || i >= min(len(st.Filtered), l.rows) || x == ax || x == ax+l.width-1 {
		return -1, true
	}
	return scrollOffset(st.Highlighted, len(st.Filtered), l.rows) + i, true
}
