// ABOUTME: Roster providers: in-memory Static, YAML/JSON File, and a concurrent Merge
// ABOUTME: All return candidates in source order with duplicate IDs dropped

package roster

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mailru/easyjson"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	pilog "github.com/mauromedda/pi-mention-go/internal/log"
	"github.com/mauromedda/pi-mention-go/pkg/mention"
)

// ErrUnknownFormat is returned for roster files that are neither YAML nor JSON.
var ErrUnknownFormat = errors.New("unknown roster format")

// Format is a roster file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Static serves a fixed roster.
type Static []mention.Candidate

// FetchAll implements mention.RosterProvider.
func (s Static) FetchAll(ctx context.Context) ([]mention.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone([]mention.Candidate(s)), nil
}

// File reads a roster file on every fetch.
type File struct {
	Path string
}

// FetchAll implements mention.RosterProvider.
func (f File) FetchAll(ctx context.Context) ([]mention.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	format, err := FormatOf(f.Path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	cs, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return cs, nil
}

// Parse decodes a roster document:
//
//	candidates:
//	  - id: u1
//	    display_name: Ana
//	    secondary: ana@example.com
//
// Entries missing an ID or display name are skipped; the first entry wins
// for a repeated ID.
func Parse(data []byte, format Format) ([]mention.Candidate, error) {
	var doc rosterFile
	switch format {
	case FormatJSON:
		if err := easyjson.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode json roster: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml roster: %w", err)
		}
	}

	out := make([]mention.Candidate, 0, len(doc.Candidates))
	seen := make(map[string]bool, len(doc.Candidates))
	for _, e := range doc.Candidates {
		id := strings.TrimSpace(e.ID)
		name := strings.TrimSpace(e.DisplayName)
		if id == "" || name == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, mention.Candidate{ID: id, DisplayName: name, Secondary: e.Secondary})
	}
	return out, nil
}

// Encode writes candidates as a roster document.
func Encode(cs []mention.Candidate, format Format) ([]byte, error) {
	doc := rosterFile{Candidates: toEntries(cs)}
	if format == FormatJSON {
		return easyjson.Marshal(doc)
	}
	return yaml.Marshal(doc)
}

// Merge fetches providers concurrently, at most limit at a time (limit <= 0
// means no bound), and concatenates their rosters in provider order with
// duplicate IDs removed. A failing provider is logged and skipped; Merge
// only fails when every provider does.
func Merge(limit int, providers ...mention.RosterProvider) mention.RosterProvider {
	return mention.RosterFunc(func(ctx context.Context) ([]mention.Candidate, error) {
		results := make([][]mention.Candidate, len(providers))
		errs := make([]error, len(providers))

		var g errgroup.Group
		if limit > 0 {
			g.SetLimit(limit)
		}
		for i, p := range providers {
			g.Go(func() error {
				results[i], errs[i] = p.FetchAll(ctx)
				return nil
			})
		}
		_ = g.Wait()

		var out []mention.Candidate
		seen := make(map[string]bool)
		failed := 0
		for i, cs := range results {
			if errs[i] != nil {
				failed++
				pilog.Warn("roster: provider %d failed: %v", i, errs[i])
				continue
			}
			for _, c := range cs {
				if seen[c.ID] {
					continue
				}
				seen[c.ID] = true
				out = append(out, c)
			}
		}
		if len(providers) > 0 && failed == len(providers) {
			return nil, fmt.Errorf("all roster providers failed: %w", errors.Join(errs...))
		}
		return out, nil
	})
}

func toEntries(cs []mention.Candidate) []entry {
	out := make([]entry, len(cs))
	for i, c := range cs {
		out[i] = entry{ID: c.ID, DisplayName: c.DisplayName, Secondary: c.Secondary}
	}
	return out
}
