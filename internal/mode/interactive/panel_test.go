// ABOUTME: Tests for suggestion panel rendering, scrolling and hit-testing
// ABOUTME: Rendered output is compared with ANSI stripped

package interactive

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mauromedda/pi-mention-go/pkg/mention"
	"github.com/mauromedda/pi-mention-go/pkg/tui/width"
)

func openState(n, highlighted int) mention.SuggestionState {
	st := mention.SuggestionState{
		Open:        true,
		Query:       &mention.Query{TriggerOffset: 0, Text: "a"},
		Anchor:      &mention.Point{X: 8, Y: 2},
		Highlighted: highlighted,
	}
	for i := range n {
		st.Filtered = append(st.Filtered, mention.Candidate{ID: fmt.Sprint(i), DisplayName: fmt.Sprintf("Person %d", i)})
	}
	return st
}

func TestScrollOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		highlighted, total, n, want int
	}{
		{highlighted: 0, total: 3, n: 6, want: 0},
		{highlighted: 5, total: 10, n: 6, want: 0},
		{highlighted: 6, total: 10, n: 6, want: 1},
		{highlighted: 9, total: 10, n: 6, want: 4},
		{highlighted: 9, total: 10, n: 0, want: 0},
	}
	for _, tt := range tests {
		if got := scrollOffset(tt.highlighted, tt.total, tt.n); got != tt.want {
			t.Errorf("scrollOffset(%d, %d, %d) = %d; want %d", tt.highlighted, tt.total, tt.n, got, tt.want)
		}
	}
}

func TestRenderPanel(t *testing.T) {
	t.Parallel()

	l := panelLayout{width: 24, rows: 3}
	s := Styles()

	t.Run("scrolls with highlight", func(t *testing.T) {
		t.Parallel()
		out := width.StripANSI(renderPanel(openState(5, 4), l, s))
		lines := strings.Split(out, "\n")
		if len(lines) != 3+panelChrome {
			t.Fatalf("panel has %d lines; want %d:\n%s", len(lines), 3+panelChrome, out)
		}
		for _, line := range lines {
			if w := width.VisibleWidth(line); w != 24 {
				t.Errorf("line %q is %d cells; want 24", line, w)
			}
		}
		if !strings.Contains(lines[1], "@a  (5)") {
			t.Errorf("header = %q", lines[1])
		}
		if !strings.Contains(lines[2], "Person 2") || !strings.Contains(lines[4], "Person 4") {
			t.Errorf("window not scrolled:\n%s", out)
		}
	})

	t.Run("empty states", func(t *testing.T) {
		t.Parallel()
		st := openState(0, 0)
		if out := width.StripANSI(renderPanel(st, l, s)); !strings.Contains(out, "No matches") {
			t.Errorf("empty panel:\n%s", out)
		}
		st.Loading = true
		if out := width.StripANSI(renderPanel(st, l, s)); !strings.Contains(out, "Loading roster...") {
			t.Errorf("loading panel:\n%s", out)
		}
	})

	t.Run("secondary truncated to fit", func(t *testing.T) {
		t.Parallel()
		st := openState(0, 0)
		st.Filtered = []mention.Candidate{{ID: "x", DisplayName: "Ana", Secondary: "a-very-long-address@example.com"}}
		lines := strings.Split(width.StripANSI(renderPanel(st, l, s)), "\n")
		if !strings.Contains(lines[2], "Ana") || !strings.Contains(lines[2], "…") {
			t.Errorf("row = %q", lines[2])
		}
	})
}

func TestPanelHit(t *testing.T) {
	t.Parallel()

	l := panelLayout{width: 32, rows: 6}
	st := openState(2, 0)

	tests := []struct {
		name       string
		x, y       int
		wantRow    int
		wantInside bool
	}{
		{name: "first row", x: 10, y: 4, wantRow: 0, wantInside: true},
		{name: "second row", x: 10, y: 5, wantRow: 1, wantInside: true},
		{name: "header", x: 10, y: 3, wantRow: -1, wantInside: true},
		{name: "left border", x: 8, y: 4, wantRow: -1, wantInside: true},
		{name: "bottom border", x: 10, y: 6, wantRow: -1, wantInside: true},
		{name: "below", x: 10, y: 7, wantRow: -1},
		{name: "left of panel", x: 7, y: 4, wantRow: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			row, inside := panelHit(st, l, tt.x, tt.y)
			if row != tt.wantRow || inside != tt.wantInside {
				t.Errorf("panelHit(%d, %d) = (%d, %v); want (%d, %v)", tt.x, tt.y, row, inside, tt.wantRow, tt.wantInside)
			}
		})
	}

	t.Run("scrolled", func(t *testing.T) {
		t.Parallel()
		st := openState(10, 8)
		if row, _ := panelHit(st, panelLayout{width: 32, rows: 3}, 10, 4); row != 6 {
			t.Errorf("row = %d; want 6", row)
		}
	})

	t.Run("closed", func(t *testing.T) {
		t.Parallel()
		if _, inside := panelHit(mention.SuggestionState{}, l, 10, 4); inside {
			t.Error("closed session reported a hit")
		}
	})
}
