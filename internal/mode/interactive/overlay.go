// ABOUTME: overlayAt composites a box onto a background view at a cell position
// ABOUTME: Used to float the suggestion panel at its anchor over the editor

package interactive

import (
	"strings"

	"github.com/mauromedda/pi-mention-go/pkg/tui/width"
)

// overlayAt splices overlay onto background with its top-left cell at
// (row, col). The background is padded or trimmed to termHeight lines;
// overlay lines falling below it are dropped and cells right of termWidth
// are cut.
func overlayAt(background, overlay string, row, col, termWidth, termHeight int) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < termHeight {
		bgLines = append(bgLines, "")
	}
	if len(bgLines) > termHeight {
		bgLines = bgLines[:termHeight]
	}
	row, col = max(row, 0), max(col, 0)

	for i, ovLine := range strings.Split(overlay, "\n") {
		r := row + i
		if r >= termHeight {
			break
		}
		if col >= termWidth {
			break
		}
		ovLine = width.SliceByColumn(ovLine, 0, termWidth-col)

		bg := bgLines[r]
		if w := width.VisibleWidth(bg); w < col {
			bg += strings.Repeat(" ", col-w)
		}
		prefix := width.SliceByColumn(bg, 0, col)
		suffix := width.SliceByColumn(bgLines[r], col+width.VisibleWidth(ovLine), -1)
		bgLines[r] = prefix + "\x1b[0m" + ovLine + "\x1b[0m" + suffix
	}
	return strings.Join(bgLines, "\n")
}
