// ABOUTME: Tests for the mention keybindings file
// ABOUTME: Covers defaults, save/load, per-action overrides and keymap conversion

package config

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mauromedda/pi-mention-go/pkg/mention"
	"github.com/mauromedda/pi-mention-go/pkg/tui/key"
)

func TestKeybindings_Defaults(t *testing.T) {
	t.Parallel()

	kb := NewKeybindings()
	tests := map[KeyAction][]string{
		ActionMentionNext:   {"ctrl+n", "down"},
		ActionMentionPrev:   {"ctrl+p", "up"},
		ActionMentionAccept: {"enter", "tab"},
		ActionMentionCancel: {"escape"},
	}
	for action, want := range tests {
		if diff := cmp.Diff(want, kb.GetBindings(action)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", action, diff)
		}
	}
}

func TestKeybindings_SaveLoad(t *testing.T) {
	t.Parallel()

	kb := NewKeybindings()
	kb.Bindings[ActionMentionAccept] = []string{"ctrl+y"}
	path := filepath.Join(t.TempDir(), "keybindings.json")
	if err := kb.SaveKeybindings(path); err != nil {
		t.Fatalf("SaveKeybindings: %v", err)
	}

	loaded, err := LoadKeybindings(path)
	if err != nil {
		t.Fatalf("LoadKeybindings: %v", err)
	}
	if diff := cmp.Diff(kb.Bindings, loaded.Bindings); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestKeybindings_LoadFilesLayering(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	project := t.TempDir()
	writeFile(t, GlobalKeybindingsFile(home), `{"mentionNext": ["ctrl+j"], "mentionAccept": ["ctrl+y"], "unknownAction": ["x"]}`)
	writeFile(t, LocalKeybindingsFile(project), `{"mentionAccept": ["enter"]}`)

	kb, err := LoadKeybindingsFiles(GlobalKeybindingsFile(home), LocalKeybindingsFile(project), filepath.Join(project, "missing.json"))
	if err != nil {
		t.Fatalf("LoadKeybindingsFiles: %v", err)
	}
	if diff := cmp.Diff([]string{"ctrl+j"}, kb.GetBindings(ActionMentionNext)); diff != "" {
		t.Errorf("next mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"enter"}, kb.GetBindings(ActionMentionAccept)); diff != "" {
		t.Errorf("accept mismatch (-want +got):\n%s", diff)
	}
	if _, ok := kb.Bindings["unknownAction"]; ok {
		t.Error("unknown action was kept")
	}

	m, err := kb.Keymap()
	if err != nil {
		t.Fatalf("Keymap: %v", err)
	}
	if got := m.Lookup(key.Ctrl('j')); got != mention.ActionNext {
		t.Errorf("ctrl+j = %s, want next", got)
	}
	if got := m.Lookup(key.Key{Type: key.KeyTab}); got != mention.ActionNone {
		t.Errorf("tab = %s, want none", got)
	}
}

func TestKeybindings_InvalidJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keybindings.json")
	writeFile(t, path, `{"mentionNext": `)
	if _, err := LoadKeybindingsFiles(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestKeybindings_InvalidKeyName(t *testing.T) {
	t.Parallel()

	kb := NewKeybindings()
	kb.Bindings[ActionMentionCancel] = []string{"hyper+q"}
	if _, err := kb.Keymap(); err == nil {
		t.Error("expected error for unknown key name")
	}
}

func TestKeybindings_ExportTemplate(t *testing.T) {
	t.Parallel()

	out, err := NewKeybindings().ExportTemplate()
	if err != nil {
		t.Fatal(err)
	}
	var raw RawKeybindings
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		t.Fatalf("template is not JSON: %v", err)
	}
	if len(raw) != 4 {
		t.Errorf("template has %d actions, want 4", len(raw))
	}
}

func TestKeybindings_NilKeymap(t *testing.T) {
	t.Parallel()

	var kb *Keybindings
	m, err := kb.Keymap()
	if err != nil || m.Lookup(key.Key{Type: key.KeyEscape}) != mention.ActionCancel {
		t.Errorf("nil Keybindings should give the default keymap")
	}
}
