// ABOUTME: Rich-text surface: an HTML document edited inside an embedded frame
// ABOUTME: Projects markup to plain text for the engine and reports caret geometry in frame-local space

package host

import (
	"fmt"
	"html"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mauromedda/pi-mention-go/pkg/mention"
	"github.com/mauromedda/pi-mention-go/pkg/tui/width"
)

// RichLayout describes the embedded editor frame. Frame and Container share
// one outer coordinate space; caret positions are computed inside the frame.
type RichLayout struct {
	Frame      mention.Rect
	Container  mention.Rect
	Panel      mention.Size
	Padding    mention.Point // content inset inside the frame
	CellWidth  float64       // advance per display cell
	LineHeight float64
}

// Rich is a surface whose native content is HTML. Edits from the engine are
// spliced into the text nodes they touch, so existing inline and block markup
// survives. Edits that add a line break or delete across one have no single
// node to land in; those re-render the document as one <p> per line.
type Rich struct {
	mu     sync.Mutex
	nodes  []*xhtml.Node // parsed fragment roots
	segs   []segment     // plain projection of nodes, in order
	doc    string
	plain  string
	cursor int
	layout RichLayout
}

// segment is a run of the plain projection. node is nil for line breaks the
// projection produced from block boundaries or <br>.
type segment struct {
	node  *xhtml.Node
	start int // rune offset in the plain text
	n     int // runes
}

// NewRich parses doc and places the cursor at the end of its text.
func NewRich(doc string, layout RichLayout) (*Rich, error) {
	nodes, err := parseFragment(doc)
	if err != nil {
		return nil, err
	}
	plain, segs := projectNodes(nodes)
	return &Rich{
		nodes:  nodes,
		segs:   segs,
		doc:    doc,
		plain:  plain,
		cursor: len([]rune(plain)),
		layout: layout,
	}, nil
}

// HTML returns the current document.
func (r *Rich) HTML() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc
}

// SetLayout replaces the frame geometry, e.g. after the page scrolled.
func (r *Rich) SetLayout(l RichLayout) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layout = l
}

// SetCursor moves the caret to a rune offset in the plain projection.
func (r *Rich) SetCursor(offset int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cursor = min(max(offset, 0), len([]rune(r.plain)))
}

// InsertText types s at the caret.
func (r *Rich) InsertText(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	runes := []rune(r.plain)
	next := string(runes[:r.cursor]) + s + string(runes[r.cursor:])
	r.set(next, r.cursor+len([]rune(s)))
}

// Snapshot implements mention.TextSource.
func (r *Rich) Snapshot() mention.TextBuffer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return mention.TextBuffer{Text: r.plain, Cursor: r.cursor}
}

// Apply implements mention.TextSink.
func (r *Rich) Apply(e mention.Edit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.set(e.Text, e.Cursor)
}

// Geometry implements mention.GeometrySource. The caret box is in the frame's
// own coordinate space and the frame is reported as the nested boundary.
func (r *Rich) Geometry() (mention.Geometry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.layout
	if l.Frame.Width <= 0 || l.Frame.Height <= 0 || l.CellWidth <= 0 || l.LineHeight <= 0 {
		return mention.Geometry{}, false
	}

	row, col := 0, 0
	rest := r.cursor
	for i, line := range strings.Split(r.plain, "\n") {
		n := len([]rune(line))
		if rest <= n {
			row, col = i, width.CaretColumn(line, rest)
			break
		}
		rest -= n + 1
	}
	frame := l.Frame
	return mention.Geometry{
		Cursor: mention.Rect{
			Left:   l.Padding.X + float64(col)*l.CellWidth,
			Top:    l.Padding.Y + float64(row)*l.LineHeight,
			Width:  1,
			Height: l.LineHeight,
		},
		Boundary:  &frame,
		Container: l.Container,
		Panel:     l.Panel,
	}, true
}

func (r *Rich) set(text string, cursor int) {
	if text != r.plain && !r.splice(text) {
		r.rebuild(text)
	}
	r.cursor = min(max(cursor, 0), len([]rune(text)))
}

// splice applies the change from r.plain to text inside the text nodes it
// covers. It reports false when the change cannot be expressed that way.
func (r *Rich) splice(text string) bool {
	old, next := []rune(r.plain), []rune(text)
	p := 0
	for p < len(old) && p < len(next) && old[p] == next[p] {
		p++
	}
	s := 0
	for s < len(old)-p && s < len(next)-p && old[len(old)-1-s] == next[len(next)-1-s] {
		s++
	}
	from, to := p, len(old)-s
	ins := next[p : len(next)-s]
	if slices.Contains(ins, '\n') {
		return false
	}

	target := -1
	for i, sg := range r.segs {
		if sg.node == nil {
			if sg.start >= from && sg.start < to {
				return false
			}
			continue
		}
		if target < 0 && sg.start <= from && from <= sg.start+sg.n {
			target = i
		}
	}
	if target < 0 {
		return false
	}

	for i, sg := range r.segs {
		if sg.node == nil {
			continue
		}
		lo, hi := max(from, sg.start), min(to, sg.start+sg.n)
		if lo >= hi && i != target {
			continue
		}
		data := []rune(sg.node.Data)
		if lo < hi {
			data = slices.Delete(data, lo-sg.start, hi-sg.start)
		}
		if i == target {
			data = slices.Insert(data, from-sg.start, ins...)
		}
		sg.node.Data = string(data)
	}

	plain, segs := projectNodes(r.nodes)
	if plain != text {
		return false
	}
	r.plain, r.segs, r.doc = plain, segs, renderNodes(r.nodes)
	return true
}

func (r *Rich) rebuild(text string) {
	r.doc = RenderParagraphs(text)
	r.nodes, _ = parseFragment(r.doc)
	_, r.segs = projectNodes(r.nodes)
	r.plain = text
}

// RenderParagraphs renders plain text as escaped paragraphs, one per line.
// Empty lines become <p><br></p> so they survive a round trip.
func RenderParagraphs(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			b.WriteString("<p><br></p>")
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(line))
		b.WriteString("</p>")
	}
	return b.String()
}

// ProjectHTML returns the plain text of an HTML fragment: tags are dropped,
// entities decoded, block elements and <br> become line breaks.
func ProjectHTML(doc string) (string, error) {
	nodes, err := parseFragment(doc)
	if err != nil {
		return "", err
	}
	plain, _ := projectNodes(nodes)
	return plain, nil
}

func parseFragment(doc string) ([]*xhtml.Node, error) {
	body := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := xhtml.ParseFragment(strings.NewReader(doc), body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return nodes, nil
}

func renderNodes(nodes []*xhtml.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		_ = xhtml.Render(&b, n) // strings.Builder never fails
	}
	return b.String()
}

// projector builds the plain text and remembers which node produced each run.
type projector struct {
	b    strings.Builder
	n    int
	segs []segment
}

func projectNodes(nodes []*xhtml.Node) (string, []segment) {
	var p projector
	for _, n := range nodes {
		p.project(n, false)
	}
	s := p.b.String()
	if !strings.HasSuffix(s, "\n") {
		return s, p.segs
	}
	last := len(p.segs) - 1
	if p.segs[last].node == nil {
		p.segs = p.segs[:last]
	} else {
		p.segs[last].n--
	}
	return s[:len(s)-1], p.segs
}

func (p *projector) project(n *xhtml.Node, pre bool) {
	switch n.Type {
	case xhtml.TextNode:
		text := n.Data
		if !pre {
			text = strings.ReplaceAll(text, "\n", " ")
		}
		p.text(n, text)
		return
	case xhtml.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Head:
			return
		case atom.Br:
			p.newline()
			return
		case atom.Pre:
			pre = true
		}
	}

	block := n.Type == xhtml.ElementNode && isBlock(n.DataAtom)
	if block {
		p.breakLine()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.project(c, pre)
	}
	if block {
		p.breakLine()
	}
}

func (p *projector) text(n *xhtml.Node, s string) {
	k := utf8.RuneCountInString(s)
	if k == 0 {
		return
	}
	p.segs = append(p.segs, segment{node: n, start: p.n, n: k})
	p.b.WriteString(s)
	p.n += k
}

func (p *projector) newline() {
	p.segs = append(p.segs, segment{start: p.n, n: 1})
	p.b.WriteByte('\n')
	p.n++
}

func (p *projector) breakLine() {
	s := p.b.String()
	if s != "" && !strings.HasSuffix(s, "\n") {
		p.newline()
	}
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.Ul, atom.Ol, atom.Blockquote, atom.Pre,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Tr, atom.Table:
		return true
	}
	return false
}
