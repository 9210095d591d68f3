// ABOUTME: Display-width measurement for terminal cells with grapheme-aware segmentation
// ABOUTME: LRU-cached widths for non-ASCII strings; caret column and padding helpers

package width

import (
	"container/list"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 512

type lruEntry struct {
	key   string
	value int
}

// cache is an O(1) LRU cache for non-ASCII string widths.
type cache struct {
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List
	size  int
}

func newCache(size int) *cache {
	return &cache{
		items: make(map[string]*list.Element, size),
		order: list.New(),
		size:  size,
	}
}

func (c *cache) get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if !ok {
		return 0, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(lruEntry).value, true
}

func (c *cache) put(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.size {
		if back := c.order.Back(); back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry{key: key, value: value})
}

var widthCache = newCache(cacheSize)

// VisibleWidth returns the number of terminal cells s occupies. ANSI escape
// sequences are zero-width; wide East Asian characters and emoji count double.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.get(s); ok {
		return w
	}
	w := computeWidth(s)
	widthCache.put(s, w)
	return w
}

// CaretColumn returns the cell column of the caret placed after the first
// runeOffset runes of line. Offsets past the end clamp to the line width.
func CaretColumn(line string, runeOffset int) int {
	if runeOffset <= 0 {
		return 0
	}
	i := 0
	for pos := range line {
		if i == runeOffset {
			return VisibleWidth(line[:pos])
		}
		i++
	}
	return VisibleWidth(line)
}

// Pad right-pads s with spaces to exactly w cells, truncating when it is wider.
func Pad(s string, w int) string {
	vw := VisibleWidth(s)
	switch {
	case vw == w:
		return s
	case vw > w:
		s = TruncateToWidth(s, w)
		vw = VisibleWidth(s)
		if vw >= w {
			return s
		}
	}
	return s + strings.Repeat(" ", w-vw)
}

// isPlainASCII reports whether s holds only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

func computeWidth(s string) int {
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(stripped, state)
		w += graphemeWidth(cluster)
		stripped = rest
		state = newState
	}
	return w
}

// graphemeWidth returns the cell width of a single grapheme cluster, using its
// leading rune.
func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
