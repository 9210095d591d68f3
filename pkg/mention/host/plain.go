// ABOUTME: Plain multi-line editor surface: rune lines, cursor, undo and kill ring
// ABOUTME: Tracks committed mentions as attachments and reports every change to the roster sync

package host

import (
	"strings"
	"sync"

	"github.com/mauromedda/pi-mention-go/internal/killring"
	"github.com/mauromedda/pi-mention-go/internal/undo"
	"github.com/mauromedda/pi-mention-go/pkg/mention"
	"github.com/mauromedda/pi-mention-go/pkg/tui/key"
	"github.com/mauromedda/pi-mention-go/pkg/tui/width"
)

const plainUndoDepth = 200

type plainState struct {
	lines [][]rune
	row   int
	col   int
}

// Plain is a plain-text surface measured in terminal cells. It is safe for
// concurrent use; a UI render and an input handler may overlap.
type Plain struct {
	mu      sync.Mutex
	lines   [][]rune
	row     int
	col     int
	history *undo.History[plainState]
	ring    *killring.Ring

	origin    mention.Point
	container mention.Rect
	panel     mention.Size

	attachments mention.AttachmentSet
	reporter    mention.AttachmentReporter
}

// NewPlain returns an empty editor. reporter may be nil.
func NewPlain(reporter mention.AttachmentReporter) *Plain {
	return &Plain{
		lines:    [][]rune{{}},
		history:  undo.New[plainState](plainUndoDepth),
		ring:     killring.New(),
		reporter: reporter,
	}
}

// SetLayout places the editor's first cell at origin inside container and
// records the panel size the resolver must fit.
func (p *Plain) SetLayout(origin mention.Point, container mention.Rect, panel mention.Size) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.origin, p.container, p.panel = origin, container, panel
}

// Text returns the buffer with newline separators.
func (p *Plain) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text()
}

// Lines returns a copy of the buffer's lines.
func (p *Plain) Lines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.lines))
	for i, l := range p.lines {
		out[i] = string(l)
	}
	return out
}

// CursorPos returns the cursor as (row, rune column).
func (p *Plain) CursorPos() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.row, p.col
}

// SetText replaces the buffer and moves the cursor to the end.
func (p *Plain) SetText(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setText(s)
	p.row = len(p.lines) - 1
	p.col = len(p.lines[p.row])
}

// Snapshot implements mention.TextSource.
func (p *Plain) Snapshot() mention.TextBuffer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return mention.TextBuffer{Text: p.text(), Cursor: p.offset()}
}

// Apply implements mention.TextSink.
func (p *Plain) Apply(e mention.Edit) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record()
	p.setText(e.Text)
	p.seek(e.Cursor)
}

// Geometry implements mention.GeometrySource. The caret box is one cell; ok
// is false until SetLayout gave the editor a container.
func (p *Plain) Geometry() (mention.Geometry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.container.Width <= 0 || p.container.Height <= 0 {
		return mention.Geometry{}, false
	}
	col := width.CaretColumn(string(p.lines[p.row]), p.col)
	return mention.Geometry{
		Cursor: mention.Rect{
			Left:   p.origin.X + float64(col),
			Top:    p.origin.Y + float64(p.row),
			Width:  1,
			Height: 1,
		},
		Container: p.container,
		Panel:     p.panel,
	}, true
}

// Committed implements mention.CommitObserver: c joins the attachment set if
// new, and the set is reported either way.
func (p *Plain) Committed(c mention.Candidate) {
	p.mu.Lock()
	p.attachments.Add(c)
	items := p.attachments.Items()
	p.mu.Unlock()
	p.report(items)
}

// Attachments returns the committed candidates in commit order.
func (p *Plain) Attachments() []mention.Candidate {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attachments.Items()
}

// RemoveAttachment drops the attachment with the given ID and deletes every
// "@Name" token for it from the buffer.
func (p *Plain) RemoveAttachment(id string) bool {
	p.mu.Lock()
	c, ok := p.attachments.Remove(id)
	if !ok {
		p.mu.Unlock()
		return false
	}
	edit := mention.RemoveAll(p.text(), p.offset(), c)
	p.record()
	p.setText(edit.Text)
	p.seek(edit.Cursor)
	items := p.attachments.Items()
	p.mu.Unlock()

	p.report(items)
	return true
}

// RemoveLastAttachment removes the most recently added attachment.
func (p *Plain) RemoveLastAttachment() (mention.Candidate, bool) {
	items := p.Attachments()
	if len(items) == 0 {
		return mention.Candidate{}, false
	}
	last := items[len(items)-1]
	return last, p.RemoveAttachment(last.ID)
}

func (p *Plain) report(items []mention.Candidate) {
	if p.reporter != nil {
		p.reporter.Report(items)
	}
}

// HandleKey applies an editing key and reports whether the buffer or cursor
// changed. Keys the engine consumed must not reach it.
func (p *Plain) HandleKey(k key.Key) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if k.Ctrl && k.Type == key.KeyRune {
		switch k.Rune {
		case 'a':
			return p.moveTo(p.row, 0)
		case 'e':
			return p.moveTo(p.row, len(p.lines[p.row]))
		case 'k':
			return p.killToEnd()
		case 'y':
			return p.insert(p.ring.Yank())
		case 'z':
			return p.undo()
		}
		return false
	}
	if k.Alt && k.Type == key.KeyRune {
		return false
	}

	switch k.Type {
	case key.KeyRune:
		return p.insert(string(k.Rune))
	case key.KeyEnter:
		return p.insert("\n")
	case key.KeyBackspace:
		return p.backspace()
	case key.KeyDelete:
		return p.deleteForward()
	case key.KeyLeft:
		if p.col > 0 {
			return p.moveTo(p.row, p.col-1)
		}
		if p.row > 0 {
			return p.moveTo(p.row-1, len(p.lines[p.row-1]))
		}
	case key.KeyRight:
		if p.col < len(p.lines[p.row]) {
			return p.moveTo(p.row, p.col+1)
		}
		if p.row < len(p.lines)-1 {
			return p.moveTo(p.row+1, 0)
		}
	case key.KeyUp:
		if p.row > 0 {
			return p.moveTo(p.row-1, min(p.col, len(p.lines[p.row-1])))
		}
	case key.KeyDown:
		if p.row < len(p.lines)-1 {
			return p.moveTo(p.row+1, min(p.col, len(p.lines[p.row+1])))
		}
	case key.KeyHome:
		return p.moveTo(p.row, 0)
	case key.KeyEnd:
		return p.moveTo(p.row, len(p.lines[p.row]))
	}
	return false
}

// ClickAt moves the cursor to the cell (row, cell) relative to the editor
// origin, snapping to the nearest rune boundary at or before the cell. It
// reports whether the cursor moved.
func (p *Plain) ClickAt(row, cell int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	row = min(max(row, 0), len(p.lines)-1)
	line := string(p.lines[row])
	col := 0
	for col < len(p.lines[row]) && width.CaretColumn(line, col+1) <= cell {
		col++
	}
	return p.moveTo(row, col)
}

// InsertText types s at the cursor.
func (p *Plain) InsertText(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.insert(s)
}

// The helpers below expect p.mu to be held.

func (p *Plain) text() string {
	parts := make([]string, len(p.lines))
	for i, l := range p.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

func (p *Plain) setText(s string) {
	raw := strings.Split(s, "\n")
	p.lines = make([][]rune, len(raw))
	for i, l := range raw {
		p.lines[i] = []rune(l)
	}
}

// offset converts (row, col) to a rune offset into text().
func (p *Plain) offset() int {
	n := 0
	for i := range p.row {
		n += len(p.lines[i]) + 1
	}
	return n + p.col
}

// seek moves the cursor to a rune offset, clamped to the buffer.
func (p *Plain) seek(off int) {
	off = max(off, 0)
	for i, l := range p.lines {
		if off <= len(l) {
			p.row, p.col = i, off
			return
		}
		off -= len(l) + 1
	}
	p.row = len(p.lines) - 1
	p.col = len(p.lines[p.row])
}

func (p *Plain) moveTo(row, col int) bool {
	if row == p.row && col == p.col {
		return false
	}
	p.row, p.col = row, col
	return true
}

func (p *Plain) insert(s string) bool {
	if s == "" {
		return false
	}
	p.record()
	off := p.offset()
	runes := []rune(p.text())
	ins := []rune(s)
	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:off]...)
	out = append(out, ins...)
	out = append(out, runes[off:]...)
	p.setText(string(out))
	p.seek(off + len(ins))
	return true
}

func (p *Plain) backspace() bool {
	if p.col > 0 {
		p.record()
		line := p.lines[p.row]
		p.lines[p.row] = append(line[:p.col-1:p.col-1], line[p.col:]...)
		p.col--
		return true
	}
	if p.row == 0 {
		return false
	}
	p.record()
	prevLen := len(p.lines[p.row-1])
	p.lines[p.row-1] = append(p.lines[p.row-1], p.lines[p.row]...)
	p.lines = append(p.lines[:p.row], p.lines[p.row+1:]...)
	p.row--
	p.col = prevLen
	return true
}

func (p *Plain) deleteForward() bool {
	line := p.lines[p.row]
	if p.col < len(line) {
		p.record()
		p.lines[p.row] = append(line[:p.col:p.col], line[p.col+1:]...)
		return true
	}
	if p.row >= len(p.lines)-1 {
		return false
	}
	p.record()
	p.lines[p.row] = append(line, p.lines[p.row+1]...)
	p.lines = append(p.lines[:p.row+1], p.lines[p.row+2:]...)
	return true
}

func (p *Plain) killToEnd() bool {
	line := p.lines[p.row]
	if p.col >= len(line) {
		return false
	}
	p.record()
	p.ring.Push(string(line[p.col:]))
	p.lines[p.row] = line[:p.col:p.col]
	return true
}

func (p *Plain) undo() bool {
	prev, ok := p.history.Undo(p.snapshotState())
	if !ok {
		return false
	}
	p.lines, p.row, p.col = prev.lines, prev.row, prev.col
	return true
}

func (p *Plain) record() {
	p.history.Record(p.snapshotState())
}

func (p *Plain) snapshotState() plainState {
	lines := make([][]rune, len(p.lines))
	for i, l := range p.lines {
		lines[i] = append([]rune(nil), l...)
	}
	return plainState{lines: lines, row: p.row, col: p.col}
}
