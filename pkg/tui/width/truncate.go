// ABOUTME: Column-based truncation and slicing that keep ANSI styling intact
// ABOUTME: Used to fit suggestion rows into the panel and to splice overlays

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TruncateToWidth cuts s to at most maxWidth cells. When it has to cut, the
// last cell becomes an ellipsis and styling is reset before it.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}

	var b strings.Builder
	col := 0
	target := maxWidth - 1
	for i := 0; i < len(s) && col < target; {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := graphemeWidth(cluster)
		if col+cw > target {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(s[i:]) - len(rest)
	}
	b.WriteString("\x1b[0m")
	b.WriteRune('…')
	return b.String()
}

// SliceByColumn returns the part of s covering cells [start, end). Escape
// sequences are always kept so styling carries across the cut. A negative end
// means "to the end of the line".
func SliceByColumn(s string, start, end int) string {
	if s == "" || (end >= 0 && start >= end) {
		return ""
	}
	var b strings.Builder
	col := 0
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			next := skipANSISequence(s, i)
			b.WriteString(s[i:next])
			i = next
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := graphemeWidth(cluster)
		if col >= start && (end < 0 || col+cw <= end) {
			b.WriteString(cluster)
		}
		col += cw
		i += len(s[i:]) - len(rest)
	}
	return b.String()
}
