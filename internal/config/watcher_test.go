// ABOUTME: Tests for the polling roster watcher
// ABOUTME: Validates create, modify and remove detection

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_Poll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "team.yaml")
	w := NewWatcher([]string{path})

	if w.Poll() {
		t.Error("change reported before anything happened")
	}

	writeFile(t, path, "candidates: []\n")
	if !w.Poll() {
		t.Error("creation not detected")
	}
	if w.Poll() {
		t.Error("creation reported twice")
	}

	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	if !w.Poll() {
		t.Error("modification not detected")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if !w.Poll() {
		t.Error("removal not detected")
	}
	if w.Poll() {
		t.Error("removal reported twice")
	}
}

func TestWatcher_Paths(t *testing.T) {
	t.Parallel()

	paths := []string{"a", "b"}
	w := NewWatcher(paths)
	got := w.Paths()
	got[0] = "changed"
	if w.Paths()[0] != "a" {
		t.Error("Paths exposes internal slice")
	}
}
