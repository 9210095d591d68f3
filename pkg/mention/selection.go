// ABOUTME: SelectionController: the Closed/Open state machine behind a mention session
// ABOUTME: Owns filtering results, wrap-around highlight, and the once-per-session anchor lock

package mention

import "github.com/google/uuid"

// Action is a navigation intent decoded from a key by a Keymap.
type Action int

const (
	ActionNone   Action = iota
	ActionNext          // highlight the next row, wrapping
	ActionPrev          // highlight the previous row, wrapping
	ActionAccept        // commit the highlighted row
	ActionCancel        // close without committing
)

var actionNames = map[Action]string{
	ActionNone:   "none",
	ActionNext:   "next",
	ActionPrev:   "prev",
	ActionAccept: "accept",
	ActionCancel: "cancel",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "unknown"
}

// CloseReason says why a session ended.
type CloseReason int

const (
	CloseInvalidated CloseReason = iota // the trigger no longer holds
	CloseCancelled                      // cancel key
	CloseCommitted                      // a candidate was inserted
	CloseBlurred                        // the host lost focus
	CloseOutside                        // pointer event outside panel and editor
	CloseSuperseded                     // a different trigger took over
	CloseAborted                        // commit collided with an external edit
)

var closeReasonNames = map[CloseReason]string{
	CloseInvalidated: "invalidated",
	CloseCancelled:   "cancelled",
	CloseCommitted:   "committed",
	CloseBlurred:     "blurred",
	CloseOutside:     "outside",
	CloseSuperseded:  "superseded",
	CloseAborted:     "aborted",
}

func (r CloseReason) String() string {
	if n, ok := closeReasonNames[r]; ok {
		return n
	}
	return "unknown"
}

// EventKind classifies session events.
type EventKind int

const (
	EventOpened EventKind = iota
	EventUpdated
	EventClosed
)

func (k EventKind) String() string {
	switch k {
	case EventOpened:
		return "opened"
	case EventUpdated:
		return "updated"
	case EventClosed:
		return "closed"
	}
	return "unknown"
}

// Event describes a session transition.
type Event struct {
	Kind      EventKind
	SessionID string
	Query     Query
	Matches   int
	Reason    CloseReason // EventClosed only
}

// Controller is the session state machine. It is not safe for concurrent use.
type Controller struct {
	state    SuggestionState
	resolver Resolver
	filter   FilterOptions
	newID    func() string
	observe  func(Event)
}

// NewController returns a closed controller. A nil resolver means Clamp with
// DefaultMargin.
func NewController(resolver Resolver, filter FilterOptions) *Controller {
	if resolver == nil {
		resolver = Clamp{Margin: DefaultMargin}
	}
	return &Controller{
		resolver: resolver,
		filter:   filter,
		newID:    uuid.NewString,
	}
}

// Observe registers fn to receive session events; nil disables.
func (c *Controller) Observe(fn func(Event)) {
	c.observe = fn
}

// State returns a copy of the current state.
func (c *Controller) State() SuggestionState {
	return c.state.clone()
}

// IsOpen reports whether a session is open.
func (c *Controller) IsOpen() bool {
	return c.state.Open
}

// SetLoading records whether the roster fetch is outstanding.
func (c *Controller) SetLoading(loading bool) {
	c.state.Loading = loading
}

// Update drives the state machine with the latest detection result. geo is
// read only when a session opens; it may be nil for hosts without geometry.
func (c *Controller) Update(q Query, ok bool, roster []Candidate, geo GeometrySource) {
	switch {
	case !ok:
		c.Close(CloseInvalidated)
	case !c.state.Open:
		c.open(q, roster, geo)
	case c.state.Query.TriggerOffset != q.TriggerOffset:
		c.Close(CloseSuperseded)
		c.open(q, roster, geo)
	case c.state.Query.Text != q.Text:
		c.state.Query = &Query{TriggerOffset: q.TriggerOffset, Text: q.Text}
		c.state.Filtered = Filter(roster, q.Text, c.filter)
		c.state.Highlighted = 0
		c.emit(EventUpdated, CloseInvalidated)
	}
}

// Refilter recomputes the list against a new roster without touching the
// anchor. No-op when closed.
func (c *Controller) Refilter(roster []Candidate) {
	if !c.state.Open {
		return
	}
	c.state.Filtered = Filter(roster, c.state.Query.Text, c.filter)
	c.state.Highlighted = 0
	c.emit(EventUpdated, CloseInvalidated)
}

func (c *Controller) open(q Query, roster []Candidate, geo GeometrySource) {
	c.state = SuggestionState{
		SessionID: c.newID(),
		Open:      true,
		Query:     &Query{TriggerOffset: q.TriggerOffset, Text: q.Text},
		Filtered:  Filter(roster, q.Text, c.filter),
		Loading:   c.state.Loading,
	}
	if geo != nil {
		if g, ok := geo.Geometry(); ok {
			p := c.resolver.Resolve(g)
			c.state.Anchor = &p
			c.state.AnchorLocked = true
		}
	}
	c.emit(EventOpened, CloseInvalidated)
}

// Close ends the open session. It reports false when nothing was open.
func (c *Controller) Close(reason CloseReason) bool {
	if !c.state.Open {
		return false
	}
	closing := c.state
	c.state = SuggestionState{Loading: closing.Loading}
	if c.observe != nil {
		c.observe(Event{
			Kind:      EventClosed,
			SessionID: closing.SessionID,
			Query:     *closing.Query,
			Matches:   len(closing.Filtered),
			Reason:    reason,
		})
	}
	return true
}

// Handle applies a navigation action. consumed tells the host to suppress its
// own handling of the key; commit is set when the action accepted a row.
func (c *Controller) Handle(a Action) (consumed bool, commit *Candidate) {
	if !c.state.Open || a == ActionNone {
		return false, nil
	}
	n := len(c.state.Filtered)
	if n == 0 {
		// Nothing to navigate; only Escape still dismisses the empty panel.
		if a == ActionCancel {
			c.Close(CloseCancelled)
			return true, nil
		}
		return false, nil
	}

	switch a {
	case ActionNext:
		c.state.Highlighted = (c.state.Highlighted + 1) % n
	case ActionPrev:
		c.state.Highlighted = (c.state.Highlighted - 1 + n) % n
	case ActionAccept:
		chosen := c.state.Filtered[c.state.Highlighted]
		return true, &chosen
	case ActionCancel:
		c.Close(CloseCancelled)
	}
	return true, nil
}

// Hover highlights row i without committing. Out-of-range rows are ignored.
func (c *Controller) Hover(i int) bool {
	if !c.state.Open || i < 0 || i >= len(c.state.Filtered) {
		return false
	}
	c.state.Highlighted = i
	return true
}

func (c *Controller) emit(kind EventKind, reason CloseReason) {
	if c.observe == nil || c.state.Query == nil {
		return
	}
	c.observe(Event{
		Kind:      kind,
		SessionID: c.state.SessionID,
		Query:     *c.state.Query,
		Matches:   len(c.state.Filtered),
		Reason:    reason,
	})
}
