// ABOUTME: End-to-end engine tests: the "Ping @jo" scenario, commit collisions, roster loading
// ABOUTME: Also drives a Binding over an in-memory surface to check attachments and removal

package mention

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mauromedda/pi-mention-go/pkg/tui/key"
)

var (
	keyDown   = key.Key{Type: key.KeyDown}
	keyEnter  = key.Key{Type: key.KeyEnter}
	keyTab    = key.Key{Type: key.KeyTab}
	keyEscape = key.Key{Type: key.KeyEscape}
)

func TestEngine_PingScenario(t *testing.T) {
	t.Parallel()

	e := New(WithCandidates([]Candidate{
		{ID: "1", DisplayName: "John"},
		{ID: "2", DisplayName: "Joanna"},
	}))

	st := e.OnTextChanged(TextBuffer{Text: "Ping @jo", Cursor: 8})
	if !st.Open || st.Query.Text != "jo" || st.Query.TriggerOffset != 5 {
		t.Fatalf("session not opened: %+v", st)
	}
	if diff := cmp.Diff([]string{"John", "Joanna"}, names(st.Filtered)); diff != "" {
		t.Fatalf("filtered mismatch (-want +got):\n%s", diff)
	}

	if res := e.OnKeyDown(keyDown); !res.Consumed || res.Edit != nil {
		t.Fatalf("down: %+v", res)
	}
	if c, _ := e.State().HighlightedCandidate(); c.DisplayName != "Joanna" {
		t.Fatalf("highlighted = %q, want Joanna", c.DisplayName)
	}

	res := e.OnKeyDown(keyEnter)
	if !res.Consumed || res.Edit == nil {
		t.Fatalf("enter: %+v", res)
	}
	if want := (Edit{Text: "Ping @Joanna ", Cursor: 13}); *res.Edit != want {
		t.Errorf("edit = %+v, want %+v", *res.Edit, want)
	}
	if res.Committed == nil || res.Committed.ID != "2" {
		t.Errorf("committed = %+v", res.Committed)
	}
	if e.IsOpen() {
		t.Error("session still open after commit")
	}
}

func TestEngine_KeysIgnoredWhenClosed(t *testing.T) {
	t.Parallel()

	e := New(WithCandidates(threeCandidates()))
	e.OnTextChanged(TextBuffer{Text: "plain", Cursor: 5})
	for _, k := range []key.Key{keyDown, keyEnter, keyTab, keyEscape} {
		if res := e.OnKeyDown(k); res.Consumed {
			t.Errorf("%s consumed while closed", k)
		}
	}
}

func TestEngine_TabCommitsAndTypingIsNotConsumed(t *testing.T) {
	t.Parallel()

	e := New(WithCandidates(threeCandidates()))
	e.OnTextChanged(TextBuffer{Text: "@an", Cursor: 3})
	if res := e.OnKeyDown(key.Rune('a')); res.Consumed {
		t.Error("printable key consumed")
	}
	res := e.OnKeyDown(keyTab)
	if !res.Consumed || res.Edit == nil || res.Edit.Text != "@Ana " {
		t.Errorf("tab: %+v", res)
	}
}

func TestEngine_EscapeCloses(t *testing.T) {
	t.Parallel()

	var reasons []CloseReason
	e := New(WithCandidates(threeCandidates()), WithObserver(func(ev Event) {
		if ev.Kind == EventClosed {
			reasons = append(reasons, ev.Reason)
		}
	}))
	e.OnTextChanged(TextBuffer{Text: "@", Cursor: 1})
	if res := e.OnKeyDown(keyEscape); !res.Consumed {
		t.Error("escape not consumed")
	}
	if e.IsOpen() {
		t.Error("escape did not close")
	}
	if diff := cmp.Diff([]CloseReason{CloseCancelled}, reasons); diff != "" {
		t.Errorf("reasons mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_CommitCollisionAborts(t *testing.T) {
	t.Parallel()

	var reason CloseReason = -1
	e := New(WithCandidates(threeCandidates()), WithObserver(func(ev Event) {
		if ev.Kind == EventClosed {
			reason = ev.Reason
		}
	}))
	e.OnTextChanged(TextBuffer{Text: "hi @an", Cursor: 6})

	// The host buffer lost its '@' behind the engine's back.
	if _, ok := e.OnCommitText(TextBuffer{Text: "hi an", Cursor: 5}, Candidate{ID: "a", DisplayName: "Ana"}); ok {
		t.Fatal("commit over a mismatched buffer succeeded")
	}
	if e.IsOpen() || reason != CloseAborted {
		t.Errorf("open = %v reason = %s", e.IsOpen(), reason)
	}

	// Stale offset beyond a shrunken buffer fails soft too.
	e.OnTextChanged(TextBuffer{Text: "hi @an", Cursor: 6})
	if _, ok := e.OnCommitText(TextBuffer{Text: "", Cursor: 0}, Candidate{ID: "a", DisplayName: "Ana"}); ok {
		t.Error("commit into empty buffer succeeded")
	}
}

func TestEngine_CommitWithoutSession(t *testing.T) {
	t.Parallel()

	e := New()
	if _, ok := e.OnCommit(Candidate{ID: "a", DisplayName: "Ana"}); ok {
		t.Error("commit without a session succeeded")
	}
}

func TestEngine_PointerAndBlur(t *testing.T) {
	t.Parallel()

	e := New(WithCandidates(threeCandidates()))
	open := func() { e.OnTextChanged(TextBuffer{Text: "@a", Cursor: 2}) }

	open()
	if st := e.OnPointerDown(PointerPanel); !st.Open {
		t.Error("pointer in panel closed the session")
	}
	if st := e.OnPointerDown(PointerEditable); !st.Open {
		t.Error("pointer in editor closed the session")
	}
	if st := e.OnPointerDown(PointerOutside); st.Open {
		t.Error("pointer outside kept the session")
	}

	open()
	if st := e.OnBlur(); st.Open {
		t.Error("blur kept the session")
	}

	open()
	if st := e.OnBlurOrOutsideInteraction(); st.Open {
		t.Error("outside interaction kept the session")
	}
}

func TestEngine_LoadRosterFailureDegrades(t *testing.T) {
	t.Parallel()

	calls := 0
	e := New(WithRoster(RosterFunc(func(context.Context) ([]Candidate, error) {
		calls++
		return nil, errors.New("directory offline")
	})))
	if !e.NeedsRoster() {
		t.Fatal("NeedsRoster = false before the first fetch")
	}
	st := e.LoadRoster(context.Background())
	if st.Loading || len(e.Roster()) != 0 {
		t.Errorf("after failed fetch: loading = %v roster = %v", st.Loading, e.Roster())
	}

	st = e.OnTextChanged(TextBuffer{Text: "@a", Cursor: 2})
	if !st.Open || len(st.Filtered) != 0 {
		t.Errorf("panel should open empty: %+v", st)
	}
	if calls != 1 {
		t.Errorf("provider calls = %d, want 1", calls)
	}
	if e.NeedsRoster() {
		t.Error("NeedsRoster after a failed fetch; want no retry")
	}
}

func TestEngine_FailedAsyncFetchNotRetried(t *testing.T) {
	t.Parallel()

	calls := 0
	e := New(WithRoster(RosterFunc(func(context.Context) ([]Candidate, error) {
		calls++
		return nil, errors.New("directory offline")
	})))
	// Host loop: check before every keystroke, fetch only when asked.
	for _, text := range []string{"@", "@a", "@ab"} {
		if e.NeedsRoster() {
			e.MarkRosterPending()
			e.SetRoster(FetchRoster(context.Background(), e.Provider()))
		}
		e.OnTextChanged(TextBuffer{Text: text, Cursor: len(text)})
	}
	if calls != 1 {
		t.Errorf("provider calls = %d, want 1", calls)
	}

	// An explicit reload still goes through.
	e.MarkRosterPending()
	e.SetRoster(FetchRoster(context.Background(), e.Provider()))
	if calls != 2 {
		t.Errorf("provider calls after reload = %d, want 2", calls)
	}
}

func TestEngine_AsyncRoster(t *testing.T) {
	t.Parallel()

	e := New(WithRoster(RosterFunc(func(context.Context) ([]Candidate, error) {
		return threeCandidates(), nil
	})))
	e.MarkRosterPending()
	if e.NeedsRoster() {
		t.Error("NeedsRoster while pending")
	}

	st := e.OnTextChanged(TextBuffer{Text: "@anab", Cursor: 5})
	if !st.Open || !st.Loading || len(st.Filtered) != 0 {
		t.Fatalf("pending state: %+v", st)
	}
	st = e.SetRoster(FetchRoster(context.Background(), e.Provider()))
	if st.Loading || len(st.Filtered) != 1 || st.Filtered[0].ID != "b" {
		t.Errorf("after SetRoster: %+v", st)
	}
	if e.NeedsRoster() {
		t.Error("NeedsRoster after roster arrived")
	}
}

// memSurface is an in-memory host used to exercise Binding.
type memSurface struct {
	buf         TextBuffer
	attachments AttachmentSet
	reports     [][]Candidate
}

func (m *memSurface) Snapshot() TextBuffer { return m.buf }

func (m *memSurface) Apply(e Edit) { m.buf = TextBuffer{Text: e.Text, Cursor: e.Cursor} }

func (m *memSurface) Geometry() (Geometry, bool) {
	return Geometry{
		Cursor:    Rect{Left: float64(m.buf.Cursor), Width: 1, Height: 1},
		Container: Rect{Width: 80, Height: 24},
		Panel:     Size{Width: 20, Height: 5},
	}, true
}

func (m *memSurface) Committed(c Candidate) {
	if m.attachments.Add(c) {
		m.reports = append(m.reports, m.attachments.Items())
	}
}

func (m *memSurface) typeText(b *Binding, s string) {
	for _, r := range s {
		runes := []rune(m.buf.Text)
		runes = append(runes[:m.buf.Cursor:m.buf.Cursor], append([]rune{r}, runes[m.buf.Cursor:]...)...)
		m.buf = TextBuffer{Text: string(runes), Cursor: m.buf.Cursor + 1}
		b.TextChanged()
	}
}

func TestBinding_TwoSessionsThenGlobalRemoval(t *testing.T) {
	t.Parallel()

	s := &memSurface{}
	b := Bind(New(WithCandidates(threeCandidates())), s)

	s.typeText(b, "hi @an")
	if st := b.State(); !st.Open || st.Anchor == nil {
		t.Fatalf("session 1 not open with anchor: %+v", st)
	}
	if !b.KeyDown(keyEnter) {
		t.Fatal("enter not consumed")
	}
	s.typeText(b, "and @an")
	if !b.KeyDown(keyEnter) {
		t.Fatal("enter not consumed")
	}

	if want := "hi @Ana and @Ana "; s.buf.Text != want {
		t.Fatalf("text = %q, want %q", s.buf.Text, want)
	}
	if s.attachments.Len() != 1 || len(s.reports) != 1 {
		t.Errorf("attachments = %d reports = %d, want 1, 1", s.attachments.Len(), len(s.reports))
	}

	ana, _ := s.attachments.Remove("a")
	s.Apply(RemoveAll(s.buf.Text, s.buf.Cursor, ana))
	if n := Count(s.buf.Text, ana); n != 0 {
		t.Errorf("%d occurrences left in %q", n, s.buf.Text)
	}
	if s.buf.Text != "hi and " || s.buf.Cursor != 7 {
		t.Errorf("after removal = %+v", s.buf)
	}
}

func TestBinding_EscapeStaysClosedUntilTyping(t *testing.T) {
	t.Parallel()

	s := &memSurface{}
	b := Bind(New(WithCandidates(threeCandidates())), s)
	s.typeText(b, "@an")

	if !b.KeyDown(keyEscape) || b.State().Open {
		t.Fatal("escape did not close the session")
	}
	if b.KeyDown(keyDown) {
		t.Error("down was consumed by a reopened session")
	}
	if b.State().Open {
		t.Error("session reopened without a text change")
	}

	s.typeText(b, "a")
	if st := b.State(); !st.Open || st.Query.Text != "ana" {
		t.Errorf("typing did not resume the mention: %+v", st)
	}
}

func TestBinding_CommitRowAndHover(t *testing.T) {
	t.Parallel()

	s := &memSurface{}
	b := Bind(New(WithCandidates(threeCandidates())), s)
	s.typeText(b, "@")

	if !b.Hover(1) || b.State().Highlighted != 1 {
		t.Error("hover did not move highlight")
	}
	if b.CommitRow(7) {
		t.Error("CommitRow out of range succeeded")
	}
	if !b.CommitRow(2) {
		t.Fatal("CommitRow(2) failed")
	}
	if s.buf.Text != "@Anakin " || b.State().Open {
		t.Errorf("after click commit: %+v open = %v", s.buf, b.State().Open)
	}
}
