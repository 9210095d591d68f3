// ABOUTME: Defines the Key type plus binding-style names ("ctrl+n", "down", "shift+tab").
// ABOUTME: Parse and Name round-trip so keymaps and scripted input share one vocabulary.

package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnknownKey is returned by Parse for names that do not describe a key.
var ErrUnknownKey = errors.New("unknown key")

// Key represents a decoded keyboard input event.
type Key struct {
	Type  KeyType
	Rune  rune // For printable characters and Ctrl/Alt combos
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events a host can deliver.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character (or Ctrl/Alt + rune)
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackTab                  // Shift+Tab
	KeyBackspace                // Backspace
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyUnknown                  // Unrecognized input
)

// keyTypeNames holds the binding name of every non-rune key type.
var keyTypeNames = map[KeyType]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyEscape:    "escape",
}

// nameAliases maps alternate spellings accepted by Parse to canonical names.
var nameAliases = map[string]string{
	"esc":      "escape",
	"return":   "enter",
	"backtab":  "shift+tab",
	"pageup":   "pgup",
	"pagedown": "pgdown",
	"del":      "delete",
}

// Rune returns the Key for a printable rune.
func Rune(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// Ctrl returns the Key for Ctrl+r. Letters are normalized to lowercase.
func Ctrl(r rune) Key {
	return Key{Type: KeyRune, Rune: unicode.ToLower(r), Ctrl: true}
}

// Name returns the binding-style name of k, e.g. "ctrl+n", "alt+x", "down", "space".
func (k Key) Name() string {
	if k.Type != KeyRune {
		name, ok := keyTypeNames[k.Type]
		if !ok {
			return "unknown"
		}
		if k.Alt {
			name = "alt+" + name
		}
		return name
	}

	var b strings.Builder
	if k.Ctrl {
		b.WriteString("ctrl+")
	}
	if k.Alt {
		b.WriteString("alt+")
	}
	if k.Rune == ' ' {
		b.WriteString("space")
	} else {
		b.WriteRune(k.Rune)
	}
	return b.String()
}

// String returns the binding-style name; handy in test failures and debug logs.
func (k Key) String() string {
	return k.Name()
}

// Parse converts a binding-style name back into a Key. It is case-insensitive for
// modifiers and named keys; single printable runes keep their case.
func Parse(name string) (Key, error) {
	if name == "" {
		return Key{}, fmt.Errorf("%w: empty name", ErrUnknownKey)
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if !unicode.IsPrint(r) {
			return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
		}
		return Rune(r), nil
	}

	lower := strings.ToLower(name)
	if alias, ok := nameAliases[lower]; ok {
		lower = alias
	}
	if lower == "space" {
		return Rune(' '), nil
	}
	for t, n := range keyTypeNames {
		if n == lower {
			k := Key{Type: t}
			if t == KeyBackTab {
				k.Shift = true
			}
			return k, nil
		}
	}

	var k Key
	rest := lower
	for {
		switch {
		case strings.HasPrefix(rest, "ctrl+"):
			k.Ctrl = true
			rest = rest[len("ctrl+"):]
			continue
		case strings.HasPrefix(rest, "alt+"):
			k.Alt = true
			rest = rest[len("alt+"):]
			continue
		}
		break
	}
	if !k.Ctrl && !k.Alt {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}

	switch {
	case rest == "space":
		k.Type, k.Rune = KeyRune, ' '
	case utf8.RuneCountInString(rest) == 1:
		r, _ := utf8.DecodeRuneInString(rest)
		k.Type, k.Rune = KeyRune, r
	default:
		if alias, ok := nameAliases[rest]; ok {
			rest = alias
		}
		found := false
		for t, n := range keyTypeNames {
			if n == rest {
				k.Type = t
				found = true
				break
			}
		}
		if !found || k.Ctrl {
			return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
		}
	}
	return k, nil
}

// ParseList parses a comma-separated list of key names ("down,down,enter").
// Blank entries are skipped.
func ParseList(s string) ([]Key, error) {
	var keys []Key
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, err := Parse(part)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
