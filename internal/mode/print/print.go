// ABOUTME: Headless mode: types text and replays keys through the mention engine
// ABOUTME: Emits the final buffer as text, one JSON object, or a stream of session events

package print

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mauromedda/pi-mention-go/internal/config"
	pilog "github.com/mauromedda/pi-mention-go/internal/log"
	"github.com/mauromedda/pi-mention-go/pkg/mention"
	"github.com/mauromedda/pi-mention-go/pkg/mention/host"
	"github.com/mauromedda/pi-mention-go/pkg/tui/key"
)

// Virtual screen used for caret geometry when no terminal is attached.
const (
	screenWidth  = 80
	screenHeight = 24
	panelChrome  = 3
)

// Config configures a headless run.
type Config struct {
	OutputFormat string    // "text" (default), "json", "stream-json"
	Text         string    // typed rune by rune; '\n' presses enter
	Keys         []key.Key // pressed after Text
}

// Deps provides the collaborators for a headless run.
type Deps struct {
	Settings *config.Settings
	Keymap   mention.Keymap
	Provider mention.RosterProvider
	Reporter mention.AttachmentReporter
}

// Result is the state after the script ran.
type Result struct {
	Text        string
	Cursor      int
	State       mention.SuggestionState
	Attachments []mention.Candidate
}

// Run executes cfg and writes the output to w.
func Run(ctx context.Context, cfg Config, deps Deps, w io.Writer) error {
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}
	f, err := newFormatter(cfg.OutputFormat, w)
	if err != nil {
		return err
	}

	res, err := Script(ctx, cfg, deps, f.event)
	if err != nil {
		return err
	}
	return f.end(res)
}

// Script drives a plain editor with cfg's input and returns the final state.
// observe, when non-nil, receives every session event.
func Script(ctx context.Context, cfg Config, deps Deps, observe func(mention.Event)) (Result, error) {
	s := deps.Settings
	if s == nil {
		s = config.Defaults()
	}

	plain := host.NewPlain(deps.Reporter)
	plain.SetLayout(
		mention.Point{},
		mention.Rect{Width: screenWidth, Height: screenHeight},
		mention.Size{Width: float64(s.Panel.Width), Height: float64(s.Panel.Height + panelChrome)},
	)

	engine := mention.New(
		mention.WithRoster(deps.Provider),
		mention.WithFilter(s.FilterOptions()),
		mention.WithDetector(s.DetectorOptions()),
		mention.WithKeymap(deps.Keymap),
		mention.WithResolver(s.Resolver()),
		mention.WithObserver(observe),
	)
	engine.LoadRoster(ctx)
	b := mention.Bind(engine, plain)

	press := func(k key.Key) {
		if b.KeyDown(k) {
			return
		}
		if plain.HandleKey(k) {
			b.TextChanged()
		}
	}

	for _, r := range cfg.Text {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if r == '\n' {
			press(key.Key{Type: key.KeyEnter})
			continue
		}
		press(key.Rune(r))
	}
	for _, k := range cfg.Keys {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		pilog.Debug("print: key %s", k)
		press(k)
	}

	buf := plain.Snapshot()
	return Result{
		Text:        buf.Text,
		Cursor:      buf.Cursor,
		State:       b.State(),
		Attachments: plain.Attachments(),
	}, nil
}

// formatter abstracts output formatting.
type formatter interface {
	event(ev mention.Event)
	end(res Result) error
}

func newFormatter(format string, w io.Writer) (formatter, error) {
	switch format {
	case "text":
		return &textFormatter{w: w}, nil
	case "json":
		return &jsonFormatter{w: w}, nil
	case "stream-json":
		return &streamJSONFormatter{enc: json.NewEncoder(w)}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want text, json or stream-json)", format)
}

// textFormatter writes only the final buffer.
type textFormatter struct{ w io.Writer }

func (f *textFormatter) event(mention.Event) {}

func (f *textFormatter) end(res Result) error {
	_, err := fmt.Fprintln(f.w, res.Text)
	return err
}

type jsonCandidate struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Secondary   string `json:"secondary,omitempty"`
}

type jsonAnchor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonSession struct {
	ID          string          `json:"id"`
	Query       string          `json:"query"`
	Trigger     int             `json:"trigger"`
	Matches     []jsonCandidate `json:"matches"`
	Highlighted int             `json:"highlighted"`
	Anchor      *jsonAnchor     `json:"anchor,omitempty"`
}

type jsonOutput struct {
	Text        string          `json:"text"`
	Cursor      int             `json:"cursor"`
	Attachments []jsonCandidate `json:"attachments"`
	Session     *jsonSession    `json:"session,omitempty"`
}

func toJSONCandidates(cs []mention.Candidate) []jsonCandidate {
	out := make([]jsonCandidate, 0, len(cs))
	for _, c := range cs {
		out = append(out, jsonCandidate{ID: c.ID, DisplayName: c.DisplayName, Secondary: c.Secondary})
	}
	return out
}

func toJSONOutput(res Result) jsonOutput {
	out := jsonOutput{
		Text:        res.Text,
		Cursor:      res.Cursor,
		Attachments: toJSONCandidates(res.Attachments),
	}
	if st := res.State; st.Open && st.Query != nil {
		out.Session = &jsonSession{
			ID:          st.SessionID,
			Query:       st.Query.Text,
			Trigger:     st.Query.TriggerOffset,
			Matches:     toJSONCandidates(st.Filtered),
			Highlighted: st.Highlighted,
		}
		if st.Anchor != nil {
			out.Session.Anchor = &jsonAnchor{X: st.Anchor.X, Y: st.Anchor.Y}
		}
	}
	return out
}

// jsonFormatter writes a single JSON object at the end.
type jsonFormatter struct{ w io.Writer }

func (f *jsonFormatter) event(mention.Event) {}

func (f *jsonFormatter) end(res Result) error {
	data, err := json.Marshal(toJSONOutput(res))
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = fmt.Fprintln(f.w, string(data))
	return err
}

// streamJSONFormatter writes one JSON line per session event, then the result.
type streamJSONFormatter struct {
	enc *json.Encoder
	err error
}

type streamEvent struct {
	Type    string      `json:"type"`
	Session string      `json:"session,omitempty"`
	Query   string      `json:"query,omitempty"`
	Matches int         `json:"matches"`
	Reason  string      `json:"reason,omitempty"`
	Result  *jsonOutput `json:"result,omitempty"`
}

func (f *streamJSONFormatter) event(ev mention.Event) {
	if f.err != nil {
		return
	}
	out := streamEvent{
		Type:    ev.Kind.String(),
		Session: ev.SessionID,
		Query:   ev.Query.Text,
		Matches: ev.Matches,
	}
	if ev.Kind == mention.EventClosed {
		out.Reason = ev.Reason.String()
	}
	f.err = f.enc.Encode(out)
}

func (f *streamJSONFormatter) end(res Result) error {
	if f.err != nil {
		return fmt.Errorf("writing event: %w", f.err)
	}
	out := toJSONOutput(res)
	return f.enc.Encode(streamEvent{Type: "result", Matches: len(res.State.Filtered), Result: &out})
}
