// ABOUTME: Keybindings file for the mention panel actions
// ABOUTME: Global ~/.pi-mention/keybindings.json overridden per action by the project file

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	pilog "github.com/mauromedda/pi-mention-go/internal/log"
	"github.com/mauromedda/pi-mention-go/pkg/mention"
)

// KeyAction names a bindable action in keybindings.json.
type KeyAction string

const (
	ActionMentionNext   KeyAction = "mentionNext"
	ActionMentionPrev   KeyAction = "mentionPrev"
	ActionMentionAccept KeyAction = "mentionAccept"
	ActionMentionCancel KeyAction = "mentionCancel"
)

var keyActions = map[KeyAction]mention.Action{
	ActionMentionNext:   mention.ActionNext,
	ActionMentionPrev:   mention.ActionPrev,
	ActionMentionAccept: mention.ActionAccept,
	ActionMentionCancel: mention.ActionCancel,
}

// Keybindings represents the keybindings configuration.
type Keybindings struct {
	Bindings map[KeyAction][]string `json:"-"`
}

// RawKeybindings is the on-disk JSON shape.
type RawKeybindings map[string][]string

// NewKeybindings returns the default bindings.
func NewKeybindings() *Keybindings {
	kb := &Keybindings{Bindings: make(map[KeyAction][]string, len(keyActions))}
	defaults := mention.DefaultKeymap()
	for name, a := range keyActions {
		kb.Bindings[name] = defaults.Bindings(a)
	}
	return kb
}

// LoadKeybindings loads one keybindings file over the defaults.
func LoadKeybindings(path string) (*Keybindings, error) {
	kb := NewKeybindings()
	if err := kb.overlay(path); err != nil {
		return nil, err
	}
	return kb, nil
}

// LoadKeybindingsFiles overlays each existing file in order; later files win
// per action. Missing files are skipped.
func LoadKeybindingsFiles(paths ...string) (*Keybindings, error) {
	kb := NewKeybindings()
	for _, p := range paths {
		if err := kb.overlay(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return kb, nil
}

func (kb *Keybindings) overlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var raw RawKeybindings
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	for actionName, keys := range raw {
		action := KeyAction(actionName)
		if _, ok := keyActions[action]; !ok {
			pilog.Debug("config: %s: ignoring unknown action %q", path, actionName)
			continue
		}
		kb.Bindings[action] = slices.Clone(keys)
	}
	return nil
}

// SaveKeybindings writes the bindings as JSON.
func (kb *Keybindings) SaveKeybindings(path string) error {
	data, err := kb.marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// GetBindings returns the bindings for an action.
func (kb *Keybindings) GetBindings(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.Bindings[action]
}

// Keymap converts the bindings into a mention.Keymap, validating key names.
func (kb *Keybindings) Keymap() (mention.Keymap, error) {
	if kb == nil {
		return mention.DefaultKeymap(), nil
	}
	overrides := make(map[mention.Action][]string, len(kb.Bindings))
	for name, keys := range kb.Bindings {
		if a, ok := keyActions[name]; ok {
			overrides[a] = keys
		}
	}
	m, err := mention.NewKeymap(overrides)
	if err != nil {
		return mention.Keymap{}, fmt.Errorf("keybindings: %w", err)
	}
	return m, nil
}

// ExportTemplate exports current keybindings as a JSON template.
func (kb *Keybindings) ExportTemplate() (string, error) {
	data, err := kb.marshal()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (kb *Keybindings) marshal() ([]byte, error) {
	raw := make(RawKeybindings, len(kb.Bindings))
	for action, keys := range kb.Bindings {
		raw[string(action)] = keys
	}
	return json.MarshalIndent(raw, "", "  ")
}
