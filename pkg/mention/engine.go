// ABOUTME: Engine composes detection, filtering, anchoring, selection and insertion per input event
// ABOUTME: One Engine per text widget; not safe for concurrent use, every call runs to completion

package mention

import (
	"context"
	"errors"
	"slices"

	pilog "github.com/mauromedda/pi-mention-go/internal/log"
	"github.com/mauromedda/pi-mention-go/pkg/tui/key"
)

// KeyResult is what OnKeyDown tells the host.
type KeyResult struct {
	// Consumed means the host must not run its default handling for the key.
	Consumed bool
	// Edit is set when the key committed a candidate.
	Edit *Edit
	// Committed is the candidate that was inserted.
	Committed *Candidate
}

// Engine is the mention-autocomplete engine for one host surface.
type Engine struct {
	ctrl     *Controller
	detector Detector
	keymap   Keymap
	geometry GeometrySource
	provider RosterProvider
	observer func(Event)

	resolver Resolver
	filter   FilterOptions

	roster    []Candidate
	requested bool // a fetch was started; a failed or empty one is not retried
	buf       TextBuffer
}

// Option configures an Engine.
type Option func(*Engine)

// WithRoster sets the provider LoadRoster and hosts fetch from.
func WithRoster(p RosterProvider) Option {
	return func(e *Engine) { e.provider = p }
}

// WithCandidates seeds the roster directly.
func WithCandidates(cs []Candidate) Option {
	return func(e *Engine) { e.roster = slices.Clone(cs) }
}

// WithGeometry sets the geometry source read on every session open.
func WithGeometry(g GeometrySource) Option {
	return func(e *Engine) { e.geometry = g }
}

// WithResolver replaces the default Clamp resolver.
func WithResolver(r Resolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// WithFilter sets the filter options.
func WithFilter(opts FilterOptions) Option {
	return func(e *Engine) { e.filter = opts }
}

// WithDetector sets the trigger rules.
func WithDetector(d Detector) Option {
	return func(e *Engine) { e.detector = d }
}

// WithKeymap sets the key bindings.
func WithKeymap(m Keymap) Option {
	return func(e *Engine) { e.keymap = m }
}

// WithObserver registers a session event callback.
func WithObserver(fn func(Event)) Option {
	return func(e *Engine) { e.observer = fn }
}

// New returns an Engine with a closed session.
func New(opts ...Option) *Engine {
	e := &Engine{keymap: DefaultKeymap()}
	for _, opt := range opts {
		opt(e)
	}
	e.ctrl = NewController(e.resolver, e.filter)
	e.ctrl.Observe(e.logEvent)
	return e
}

func (e *Engine) logEvent(ev Event) {
	switch ev.Kind {
	case EventClosed:
		pilog.Debug("mention: session %s closed (%s)", ev.SessionID, ev.Reason)
	default:
		pilog.Debug("mention: session %s %s query=%q matches=%d", ev.SessionID, ev.Kind, ev.Query.Text, ev.Matches)
	}
	if e.observer != nil {
		e.observer(ev)
	}
}

// State returns a copy of the current suggestion state.
func (e *Engine) State() SuggestionState { return e.ctrl.State() }

// IsOpen reports whether a session is open.
func (e *Engine) IsOpen() bool { return e.ctrl.IsOpen() }

// Keymap returns the active key bindings.
func (e *Engine) Keymap() Keymap { return e.keymap }

// OnTextChanged runs trigger detection against buf and advances the session.
func (e *Engine) OnTextChanged(buf TextBuffer) SuggestionState {
	e.buf = buf
	q, ok := e.detector.Detect(buf.Text, buf.Cursor)
	e.ctrl.Update(q, ok, e.roster, e.geometry)
	return e.ctrl.State()
}

// OnKeyDown handles a key while a session is open. Keys are never consumed
// while the session is closed.
func (e *Engine) OnKeyDown(k key.Key) KeyResult {
	if !e.ctrl.IsOpen() {
		return KeyResult{}
	}
	consumed, commit := e.ctrl.Handle(e.keymap.Lookup(k))
	res := KeyResult{Consumed: consumed}
	if commit != nil {
		if edit, ok := e.OnCommit(*commit); ok {
			res.Edit = &edit
			res.Committed = commit
		}
	}
	return res
}

// OnCommit inserts c over the open session's trigger span in the last text
// seen by OnTextChanged and closes the session. ok is false when no session
// is open or the buffer no longer has an '@' at the trigger offset; the
// session is closed either way and the text must be left alone.
func (e *Engine) OnCommit(c Candidate) (Edit, bool) {
	return e.OnCommitText(e.buf, c)
}

// OnCommitText is OnCommit against an explicit, fresh snapshot.
func (e *Engine) OnCommitText(buf TextBuffer, c Candidate) (Edit, bool) {
	st := e.ctrl.State()
	if !st.Open {
		return Edit{}, false
	}
	edit, err := Insert(buf.Text, st.Query.TriggerOffset, c)
	if err != nil {
		if errors.Is(err, ErrTriggerMismatch) {
			pilog.Debug("mention: commit of %s aborted: %v", c.ID, err)
		}
		e.ctrl.Close(CloseAborted)
		return Edit{}, false
	}
	e.ctrl.Close(CloseCommitted)
	e.buf = TextBuffer{Text: edit.Text, Cursor: edit.Cursor}
	return edit, true
}

// OnBlurOrOutsideInteraction closes the session.
func (e *Engine) OnBlurOrOutsideInteraction() SuggestionState {
	e.ctrl.Close(CloseOutside)
	return e.ctrl.State()
}

// OnBlur closes the session because the surface lost focus.
func (e *Engine) OnBlur() SuggestionState {
	e.ctrl.Close(CloseBlurred)
	return e.ctrl.State()
}

// OnPointerDown closes the session when the press landed outside both the
// panel and the editable region. Presses inside the editor move the caret;
// the host follows up with OnTextChanged.
func (e *Engine) OnPointerDown(target PointerTarget) SuggestionState {
	if target == PointerOutside {
		e.ctrl.Close(CloseOutside)
	}
	return e.ctrl.State()
}

// OnHover highlights row i without committing.
func (e *Engine) OnHover(i int) bool { return e.ctrl.Hover(i) }

// Provider returns the configured roster provider, if any.
func (e *Engine) Provider() RosterProvider { return e.provider }

// NeedsRoster reports whether the initial fetch should be issued: a provider
// exists and no fetch was started yet. It stays false after a failed fetch;
// hosts refetch only on an explicit reload.
func (e *Engine) NeedsRoster() bool {
	return e.provider != nil && !e.requested
}

// MarkRosterPending records that the host started a fetch.
func (e *Engine) MarkRosterPending() {
	e.requested = true
	e.ctrl.SetLoading(true)
}

// SetRoster installs a fetched roster and refilters any open session.
func (e *Engine) SetRoster(cs []Candidate) SuggestionState {
	e.roster = slices.Clone(cs)
	e.ctrl.SetLoading(false)
	e.ctrl.Refilter(e.roster)
	return e.ctrl.State()
}

// Roster returns a copy of the current roster.
func (e *Engine) Roster() []Candidate { return slices.Clone(e.roster) }

// LoadRoster fetches synchronously from the provider. Hosts with an event
// loop should run FetchRoster off the loop and call SetRoster instead.
func (e *Engine) LoadRoster(ctx context.Context) SuggestionState {
	if e.provider == nil {
		return e.ctrl.State()
	}
	e.MarkRosterPending()
	return e.SetRoster(FetchRoster(ctx, e.provider))
}
