// ABOUTME: Markdown preview of the editor buffer rendered with glamour
// ABOUTME: Committed mentions are emboldened; renders are cached by content hash and width

package interactive

import (
	"crypto/sha256"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/pi-mention-go/pkg/mention"
)

// maxPreviewCache bounds the render cache; the buffer changes on every keystroke.
const maxPreviewCache = 64

// MarkdownRenderer wraps glamour to render markdown with caching.
type MarkdownRenderer struct {
	cache map[string]string // "hash:width" -> rendered
}

// NewMarkdownRenderer creates a MarkdownRenderer with an empty cache.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{cache: make(map[string]string)}
}

// Render returns the terminal-styled rendering of md wrapped at width. On a
// glamour error the raw text is returned.
func (r *MarkdownRenderer) Render(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}

	key := cacheKey(md, width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	rendered = strings.TrimRight(rendered, "\n ")

	if len(r.cache) >= maxPreviewCache {
		clear(r.cache)
	}
	r.cache[key] = rendered
	return rendered
}

func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}

// previewMarkdown emboldens every committed token in text. Longer tokens win
// where one is a prefix of another.
func previewMarkdown(text string, attachments []mention.Candidate) string {
	toks := make([]string, 0, len(attachments))
	for _, c := range attachments {
		if c.DisplayName != "" {
			toks = append(toks, c.Token())
		}
	}
	if len(toks) == 0 {
		return text
	}
	slices.SortFunc(toks, func(a, b string) int { return len(b) - len(a) })
	pairs := make([]string, 0, 2*len(toks))
	for _, t := range toks {
		pairs = append(pairs, t, "**"+t+"**")
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
