// ABOUTME: Bubble Tea model hosting a plain editor with mention autocomplete
// ABOUTME: Keys go to the engine first; mouse, focus and roster messages drive the session

package interactive

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pi-mention-go/internal/config"
	pilog "github.com/mauromedda/pi-mention-go/internal/log"
	"github.com/mauromedda/pi-mention-go/pkg/mention"
	"github.com/mauromedda/pi-mention-go/pkg/mention/host"
	"github.com/mauromedda/pi-mention-go/pkg/tui/clipboard"
	"github.com/mauromedda/pi-mention-go/pkg/tui/key"
	"github.com/mauromedda/pi-mention-go/pkg/tui/width"
)

// Editor placement: a title row above, a two-cell prompt gutter on the left.
const (
	editorTop   = 1
	promptWidth = 2
	footerRows  = 2
)

// Options wires the model to its collaborators. Only Settings is required.
type Options struct {
	Settings *config.Settings
	Keymap   mention.Keymap
	Provider mention.RosterProvider     // nil: the roster stays empty
	Reporter mention.AttachmentReporter // nil: attachments are not reported
	Watcher  *config.Watcher            // nil: no hot reload
	Text     string                     // initial buffer

	// Copy writes the buffer to the clipboard on ctrl+o; nil means
	// clipboard.Write.
	Copy func(ctx context.Context, text string) error
}

// shared is the mutable state every copy of Model points at.
type shared struct {
	ctx      context.Context
	plain    *host.Plain
	binding  *mention.Binding
	markdown *MarkdownRenderer
	watcher  *config.Watcher
	copy     func(context.Context, string) error
	status   string
}

// Model is the interactive editor. It implements tea.Model with value
// semantics; editor and engine state live behind sh.
type Model struct {
	sh       *shared
	settings *config.Settings
	panel    panelLayout
	interval time.Duration
	width    int
	height   int
	quitting bool
}

// New builds the model. ctx bounds roster fetches.
func New(ctx context.Context, opts Options) Model {
	s := opts.Settings
	if s == nil {
		s = config.Defaults()
	}
	plain := host.NewPlain(opts.Reporter)
	if opts.Text != "" {
		plain.SetText(opts.Text)
	}
	engine := mention.New(
		mention.WithRoster(opts.Provider),
		mention.WithFilter(s.FilterOptions()),
		mention.WithDetector(s.DetectorOptions()),
		mention.WithKeymap(opts.Keymap),
		mention.WithResolver(s.Resolver()),
	)

	if opts.Copy == nil {
		opts.Copy = clipboard.Write
	}
	m := Model{
		sh: &shared{
			ctx:      ctx,
			plain:    plain,
			binding:  mention.Bind(engine, plain),
			markdown: NewMarkdownRenderer(),
			watcher:  opts.Watcher,
			copy:     opts.Copy,
		},
		settings: s,
		panel:    panelLayout{width: max(s.Panel.Width, 8), rows: max(s.Panel.Height, 1)},
		interval: s.Roster.WatchInterval,
	}
	if m.interval <= 0 {
		m.interval = config.Defaults().Roster.WatchInterval
	}
	return m
}

// Init starts the initial roster fetch and the watcher tick.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if cmd := m.maybeFetch(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.sh.watcher != nil {
		cmds = append(cmds, m.watchTick())
	}
	return tea.Batch(cmds...)
}

// Update handles key, mouse, focus, resize and roster messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		m.sh.binding.Blur()
	case rosterLoadedMsg:
		m.sh.binding.SetRoster(msg.candidates)
		m.sh.status = fmt.Sprintf("%d people", len(msg.candidates))
		if msg.reload {
			m.sh.status += " (reloaded)"
		}
	case clipboardMsg:
		if msg.err != nil {
			pilog.Warn("interactive: copy failed: %v", msg.err)
			m.sh.status = "copy failed"
		} else {
			m.sh.status = fmt.Sprintf("copied %d chars", msg.n)
		}
	case watchTickMsg:
		var cmds []tea.Cmd
		if m.sh.watcher.Poll() {
			pilog.Info("interactive: roster files changed, reloading")
			cmds = append(cmds, m.reload())
		}
		cmds = append(cmds, m.watchTick())
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyCtrlR:
		if c, ok := m.sh.plain.RemoveLastAttachment(); ok {
			m.sh.status = "removed " + c.Token()
			m.sh.binding.TextChanged()
		}
		return m, nil
	case tea.KeyCtrlO:
		return m, m.copyText()
	}

	if msg.Paste {
		m.sh.plain.InsertText(string(msg.Runes))
		m.sh.binding.TextChanged()
		return m, m.maybeFetch()
	}
	for _, k := range keysFromMsg(msg) {
		m.dispatch(k)
	}
	return m, m.maybeFetch()
}

// dispatch routes k to the engine first; only keys it did not consume edit
// the buffer.
func (m Model) dispatch(k key.Key) {
	if m.sh.binding.KeyDown(k) {
		return
	}
	if m.sh.plain.HandleKey(k) {
		m.sh.binding.TextChanged()
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	if tea.MouseEvent(msg).IsWheel() {
		return
	}
	st := m.sh.binding.State()
	row, inPanel := panelHit(st, m.panel, msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if row >= 0 {
			m.sh.binding.Hover(row)
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		switch {
		case row >= 0:
			m.sh.binding.CommitRow(row)
		case inPanel:
			m.sh.binding.PointerDown(mention.PointerPanel)
		case m.inEditor(msg.X, msg.Y):
			m.sh.binding.PointerDown(mention.PointerEditable)
			if m.sh.plain.ClickAt(msg.Y-editorTop, msg.X-promptWidth) {
				m.sh.binding.TextChanged()
			}
		default:
			m.sh.binding.PointerDown(mention.PointerOutside)
		}
	}
}

func (m Model) inEditor(x, y int) bool {
	return x >= promptWidth && y >= editorTop && y < editorTop+len(m.sh.plain.Lines())
}

// layout tells the editor where it sits so caret geometry is in screen cells.
func (m *Model) layout() {
	m.panel.width = min(max(m.settings.Panel.Width, 8), max(m.width, 1))
	m.sh.plain.SetLayout(
		mention.Point{X: promptWidth, Y: editorTop},
		mention.Rect{Width: float64(m.width), Height: float64(m.height)},
		m.panel.size(),
	)
}

// maybeFetch starts a roster fetch when the engine has none and none is running.
func (m Model) maybeFetch() tea.Cmd {
	e := m.sh.binding.Engine()
	if !e.NeedsRoster() {
		return nil
	}
	e.MarkRosterPending()
	return fetchRoster(m.sh.ctx, e.Provider(), false)
}

// reload refetches after the roster files changed, keeping the current roster
// until the new one arrives.
func (m Model) reload() tea.Cmd {
	e := m.sh.binding.Engine()
	if e.Provider() == nil {
		return nil
	}
	e.MarkRosterPending()
	return fetchRoster(m.sh.ctx, e.Provider(), true)
}

func fetchRoster(ctx context.Context, p mention.RosterProvider, reload bool) tea.Cmd {
	return func() tea.Msg {
		return rosterLoadedMsg{candidates: mention.FetchRoster(ctx, p), reload: reload}
	}
}

// copyText writes the buffer to the clipboard off the event loop.
func (m Model) copyText() tea.Cmd {
	ctx, text, copyFn := m.sh.ctx, m.sh.plain.Text(), m.sh.copy
	return func() tea.Msg {
		return clipboardMsg{n: utf8.RuneCountInString(text), err: copyFn(ctx, text)}
	}
}

func (m Model) watchTick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return watchTickMsg{} })
}

// View renders the title, the editor, the optional preview and the footer,
// then floats the panel at its anchor.
func (m Model) View() string {
	if m.quitting || m.width == 0 || m.height == 0 {
		return ""
	}
	s := Styles()
	attachments := m.sh.plain.Attachments()

	lines := []string{m.titleLine(s)}
	lines = append(lines, m.editorLines(s, attachments)...)
	if m.settings.Panel.Preview {
		if md := m.sh.markdown.Render(previewMarkdown(m.sh.plain.Text(), attachments), max(m.width-promptWidth, 10)); md != "" {
			lines = append(lines, "")
			lines = append(lines, strings.Split(md, "\n")...)
		}
	}
	body := max(m.height-footerRows, 1)
	for len(lines) < body {
		lines = append(lines, "")
	}
	lines = lines[:body]
	lines = append(lines, m.footerLines(s, attachments)...)

	view := strings.Join(lines, "\n")
	if st := m.sh.binding.State(); st.Open && st.Anchor != nil {
		view = overlayAt(view, renderPanel(st, m.panel, s), int(st.Anchor.Y), int(st.Anchor.X), m.width, m.height)
	}
	return view
}

func (m Model) titleLine(s ThemeStyles) string {
	title := "pi-mention"
	if st := m.sh.binding.State(); st.Loading {
		title += "  loading roster..."
	} else if m.sh.status != "" {
		title += "  " + m.sh.status
	}
	return s.Status.Render(width.TruncateToWidth(title, m.width))
}

func (m Model) editorLines(s ThemeStyles, attachments []mention.Candidate) []string {
	row, col := m.sh.plain.CursorPos()
	var out []string
	for i, line := range m.sh.plain.Lines() {
		prompt := "  "
		if i == 0 {
			prompt = "> "
		}
		var body string
		if i == row {
			runes := []rune(line)
			at := " "
			if col < len(runes) {
				at = string(runes[col])
			}
			rest := ""
			if col < len(runes) {
				rest = string(runes[col+1:])
			}
			body = highlightTokens(s, string(runes[:col]), attachments) + s.Caret.Render(at) + highlightTokens(s, rest, attachments)
		} else {
			body = highlightTokens(s, line, attachments)
		}
		out = append(out, s.Prompt.Render(prompt)+body)
	}
	return out
}

// highlightTokens colors committed mentions in one line of text.
func highlightTokens(s ThemeStyles, line string, attachments []mention.Candidate) string {
	if line == "" || len(attachments) == 0 {
		return s.Text.Render(line)
	}
	var b strings.Builder
	rest := line
	for rest != "" {
		at, tok := -1, ""
		for _, c := range attachments {
			t := c.Token()
			if i := strings.Index(rest, t); i >= 0 && (at < 0 || i < at || (i == at && len(t) > len(tok))) {
				at, tok = i, t
			}
		}
		if at < 0 || tok == "@" {
			b.WriteString(s.Text.Render(rest))
			break
		}
		if at > 0 {
			b.WriteString(s.Text.Render(rest[:at]))
		}
		b.WriteString(s.Token.Render(tok))
		rest = rest[at+len(tok):]
	}
	return b.String()
}

func (m Model) footerLines(s ThemeStyles, attachments []mention.Candidate) []string {
	names := make([]string, len(attachments))
	for i, c := range attachments {
		names[i] = c.Token()
	}
	attached := "attached: none"
	if len(names) > 0 {
		attached = "attached: " + strings.Join(names, ", ")
	}
	help := "@ mention  enter accept  esc dismiss  ctrl+r unattach  ctrl+o copy  ctrl+c quit"
	return []string{
		s.Status.Render(width.TruncateToWidth(attached, m.width)),
		s.Status.Render(width.TruncateToWidth(help, m.width)),
	}
}

// Text returns the editor buffer.
func (m Model) Text() string { return m.sh.plain.Text() }

// Attachments returns the committed mentions.
func (m Model) Attachments() []mention.Candidate { return m.sh.plain.Attachments() }

// State returns the engine's suggestion state.
func (m Model) State() mention.SuggestionState { return m.sh.binding.State() }
