// ABOUTME: Translates Bubble Tea key messages into the engine's key vocabulary
// ABOUTME: Multi-rune messages become one key per rune; pastes are left to the caller

package interactive

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pi-mention-go/pkg/tui/key"
)

var teaKeyTypes = map[tea.KeyType]key.KeyType{
	tea.KeyEnter:     key.KeyEnter,
	tea.KeyTab:       key.KeyTab,
	tea.KeyShiftTab:  key.KeyBackTab,
	tea.KeyBackspace: key.KeyBackspace,
	tea.KeyCtrlH:     key.KeyBackspace,
	tea.KeyDelete:    key.KeyDelete,
	tea.KeyUp:        key.KeyUp,
	tea.KeyDown:      key.KeyDown,
	tea.KeyLeft:      key.KeyLeft,
	tea.KeyRight:     key.KeyRight,
	tea.KeyHome:      key.KeyHome,
	tea.KeyEnd:       key.KeyEnd,
	tea.KeyPgUp:      key.KeyPageUp,
	tea.KeyPgDown:    key.KeyPageDown,
	tea.KeyEsc:       key.KeyEscape,
}

// keysFromMsg converts msg. Unsupported keys yield nil.
func keysFromMsg(msg tea.KeyMsg) []key.Key {
	if t, ok := teaKeyTypes[msg.Type]; ok {
		k := key.Key{Type: t, Alt: msg.Alt}
		if t == key.KeyBackTab {
			k.Shift = true
		}
		return []key.Key{k}
	}

	switch {
	case msg.Type == tea.KeySpace:
		return []key.Key{{Type: key.KeyRune, Rune: ' ', Alt: msg.Alt}}
	case msg.Type == tea.KeyRunes:
		keys := make([]key.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, key.Key{Type: key.KeyRune, Rune: r, Alt: msg.Alt})
		}
		return keys
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		k := key.Ctrl(rune('a' + int(msg.Type-tea.KeyCtrlA)))
		k.Alt = msg.Alt
		return []key.Key{k}
	}
	return nil
}
