// ABOUTME: Capability interfaces a host surface implements, and Binding which couples a surface to an Engine
// ABOUTME: Hosts supply text snapshots, caret geometry and edit application; everything else lives in Engine

package mention

import "github.com/mauromedda/pi-mention-go/pkg/tui/key"

// TextSource reads the surface's plain-text projection and caret.
type TextSource interface {
	Snapshot() TextBuffer
}

// GeometrySource reads caret and container geometry from the current render
// state. ok is false when the surface is not laid out yet.
type GeometrySource interface {
	Geometry() (g Geometry, ok bool)
}

// TextSink writes an engine edit back into the surface.
type TextSink interface {
	Apply(e Edit)
}

// Surface is the minimum a host must provide.
type Surface interface {
	TextSource
	TextSink
}

// CommitObserver is implemented by surfaces that track committed candidates,
// such as the plain-text host's attachment set.
type CommitObserver interface {
	Committed(c Candidate)
}

// PointerTarget classifies where a pointer-down landed.
type PointerTarget int

const (
	PointerOutside  PointerTarget = iota // neither panel nor editable region
	PointerPanel                         // inside the suggestion panel
	PointerEditable                      // inside the surface's editable region
)

// Binding drives an Engine from a Surface. Hosts call its methods from their
// input handlers.
type Binding struct {
	engine  *Engine
	surface Surface
}

// Bind attaches s to e. If s also implements GeometrySource and e has no
// geometry source of its own, s is used.
func Bind(e *Engine, s Surface) *Binding {
	if gs, ok := s.(GeometrySource); ok && e.geometry == nil {
		e.geometry = gs
	}
	return &Binding{engine: e, surface: s}
}

// Engine returns the bound engine.
func (b *Binding) Engine() *Engine { return b.engine }

// State returns the engine's current state.
func (b *Binding) State() SuggestionState { return b.engine.State() }

// TextChanged re-reads the surface after the user edited it.
func (b *Binding) TextChanged() SuggestionState {
	return b.engine.OnTextChanged(b.surface.Snapshot())
}

// KeyDown routes k to the engine and applies any resulting commit. It reports
// whether the host must suppress its default handling of k. The surface is
// re-read first, but detection only reruns when it changed since the engine
// last saw it, so a cancelled session stays closed until the user types.
func (b *Binding) KeyDown(k key.Key) bool {
	if buf := b.surface.Snapshot(); buf != b.engine.buf {
		b.engine.OnTextChanged(buf)
	}
	res := b.engine.OnKeyDown(k)
	if res.Edit != nil {
		b.apply(*res.Edit, *res.Committed)
	}
	return res.Consumed
}

// Commit inserts c for the open session, as a pointer click on a row does.
func (b *Binding) Commit(c Candidate) bool {
	edit, ok := b.engine.OnCommitText(b.surface.Snapshot(), c)
	if ok {
		b.apply(edit, c)
	}
	return ok
}

// CommitRow commits the i-th filtered row.
func (b *Binding) CommitRow(i int) bool {
	st := b.engine.State()
	if !st.Open || i < 0 || i >= len(st.Filtered) {
		return false
	}
	return b.Commit(st.Filtered[i])
}

// Blur closes the session because the surface lost focus.
func (b *Binding) Blur() SuggestionState { return b.engine.OnBlur() }

// PointerDown reports a pointer press at target.
func (b *Binding) PointerDown(target PointerTarget) SuggestionState {
	return b.engine.OnPointerDown(target)
}

// Hover highlights row i.
func (b *Binding) Hover(i int) bool { return b.engine.OnHover(i) }

// SetRoster delivers an asynchronously fetched roster.
func (b *Binding) SetRoster(cs []Candidate) SuggestionState {
	return b.engine.SetRoster(cs)
}

func (b *Binding) apply(e Edit, c Candidate) {
	b.surface.Apply(e)
	if obs, ok := b.surface.(CommitObserver); ok {
		obs.Committed(c)
	}
}
