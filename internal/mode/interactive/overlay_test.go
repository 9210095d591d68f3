// ABOUTME: Tests for overlayAt compositing
// ABOUTME: Covers splicing, padding short lines, clipping at the right and bottom edges

package interactive

import (
	"strings"
	"testing"

	"github.com/mauromedda/pi-mention-go/pkg/tui/width"
)

func TestOverlayAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		bg, ov     string
		row, col   int
		w, h       int
		want       []string
	}{
		{name: "splice", bg: "aaaa\nbbbb", ov: "XY", row: 1, col: 1, w: 4, h: 3, want: []string{"aaaa", "bXYb", ""}},
		{name: "pads short line", bg: "a", ov: "XY", row: 0, col: 3, w: 8, h: 1, want: []string{"a  XY"}},
		{name: "clips right", bg: "", ov: "XYZ", row: 0, col: 2, w: 4, h: 1, want: []string{"  XY"}},
		{name: "clips bottom", bg: "a\nb", ov: "1\n2\n3", row: 1, col: 0, w: 4, h: 2, want: []string{"a", "1"}},
		{name: "trims background", bg: "a\nb\nc", ov: "", row: 5, col: 0, w: 4, h: 2, want: []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := strings.Split(width.StripANSI(overlayAt(tt.bg, tt.ov, tt.row, tt.col, tt.w, tt.h)), "\n")
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("overlayAt = %q; want %q", got, tt.want)
			}
		})
	}
}
