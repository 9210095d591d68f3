// ABOUTME: Keymap translates host key events into session navigation actions
// ABOUTME: Defaults: down/ctrl+n next, up/ctrl+p prev, enter/tab accept, escape cancel

package mention

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mauromedda/pi-mention-go/pkg/tui/key"
)

// Keymap maps key names (see key.Key.Name) to actions.
type Keymap struct {
	actions map[string]Action
}

var defaultBindings = map[Action][]string{
	ActionNext:   {"down", "ctrl+n"},
	ActionPrev:   {"up", "ctrl+p"},
	ActionAccept: {"enter", "tab"},
	ActionCancel: {"escape"},
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() Keymap {
	m, _ := NewKeymap(nil)
	return m
}

// NewKeymap builds a keymap from the defaults, replacing the bindings of every
// action present in overrides. Key names are validated with key.Parse.
func NewKeymap(overrides map[Action][]string) (Keymap, error) {
	m := Keymap{actions: make(map[string]Action)}
	for _, a := range []Action{ActionNext, ActionPrev, ActionAccept, ActionCancel} {
		names, ok := overrides[a]
		if !ok {
			names = defaultBindings[a]
		}
		for _, name := range names {
			k, err := key.Parse(name)
			if err != nil {
				return Keymap{}, fmt.Errorf("binding %s: %w", a, err)
			}
			m.actions[k.Name()] = a
		}
	}
	return m, nil
}

// Lookup returns the action bound to k, or ActionNone.
func (m Keymap) Lookup(k key.Key) Action {
	if m.actions == nil {
		return DefaultKeymap().Lookup(k)
	}
	return m.actions[k.Name()]
}

// Bindings returns the key names bound to a, sorted.
func (m Keymap) Bindings(a Action) []string {
	var names []string
	for name, bound := range m.actions {
		if bound == a {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// ParseAction maps "next", "prev", "accept" and "cancel" to actions.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}
