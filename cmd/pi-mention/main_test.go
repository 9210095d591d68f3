// ABOUTME: Tests for flag parsing, setting overrides and the roster/report wiring
// ABOUTME: Uses temp dirs for roster and report files

package main

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mauromedda/pi-mention-go/internal/config"
	"github.com/mauromedda/pi-mention-go/pkg/mention"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("pi-mention", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	a, err := parseArgs(fs, []string{
		"-print", "-text", "hi @jo", "-keys", "down,enter",
		"-format", "json", "-roster", "a.yaml, b.json", "-match", "fuzzy",
	})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !a.print || a.text != "hi @jo" || a.keys != "down,enter" || a.format != "json" || a.match != "fuzzy" {
		t.Errorf("parsed %+v", a)
	}
	if diff := cmp.Diff([]string{"a.yaml", "b.json"}, splitList(a.rosters)); diff != "" {
		t.Errorf("rosters mismatch (-want +got):\n%s", diff)
	}
}

func TestParseArgs_Unknown(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("pi-mention", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := parseArgs(fs, []string{"-nope"}); err == nil {
		t.Error("want an error for an unknown flag")
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"a", []string{"a"}},
		{"a, b ,,c", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, splitList(tt.in)); diff != "" {
			t.Errorf("splitList(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	s := config.Defaults()
	s.Roster.Files = []string{"from-config.yaml"}
	err := applyOverrides(s, cliArgs{
		match:    "prefix",
		theme:    "light",
		logLevel: "debug",
		rosters:  "x.yaml",
		watch:    true,
	})
	if err != nil {
		t.Fatalf("applyOverrides: %v", err)
	}
	if s.Mention.MatchMode != "prefix" || s.Theme != "light" || s.LogLevel != "debug" || !s.Roster.Watch {
		t.Errorf("settings = %+v", s)
	}
	if diff := cmp.Diff([]string{"x.yaml"}, s.Roster.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}

	if err := applyOverrides(config.Defaults(), cliArgs{match: "regex"}); err == nil {
		t.Error("want a validation error for an unknown match mode")
	}
}

func TestBuildProvider(t *testing.T) {
	t.Parallel()

	if p := buildProvider(config.Defaults()); p != nil {
		t.Error("no sources should yield a nil provider")
	}

	dir := t.TempDir()
	file := filepath.Join(dir, "team.yaml")
	data := "candidates:\n  - id: u1\n    display_name: Ana\n"
	if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	profiles := filepath.Join(dir, "people")
	if err := os.MkdirAll(profiles, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(profiles, "bo.md"), []byte("# Bo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := config.Defaults()
	s.Roster.Files = []string{file}
	s.Roster.Dirs = []string{profiles}
	got, err := buildProvider(s).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	want := []mention.Candidate{
		{ID: "u1", DisplayName: "Ana"},
		{ID: "bo", DisplayName: "Bo"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildReporter_WritesJSONLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reports.jsonl")
	rep, closeFn, err := buildReporter(path)
	if err != nil {
		t.Fatalf("buildReporter: %v", err)
	}
	rep.Report([]mention.Candidate{{ID: "u1", DisplayName: "Ana"}})
	rep.Report(nil)
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d; want 2: %q", len(lines), data)
	}
	if !strings.Contains(lines[0], `"u1"`) {
		t.Errorf("first report = %s; want u1", lines[0])
	}
}

func TestBuildReporter_BadPath(t *testing.T) {
	t.Parallel()

	_, _, err := buildReporter(filepath.Join(t.TempDir(), "missing", "r.jsonl"))
	if err == nil {
		t.Error("want an error for an unwritable report path")
	}
}
