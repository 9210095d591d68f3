// ABOUTME: YAML frontmatter parser for Markdown profile files
// ABOUTME: Dir reads a directory of profiles, one candidate per *.md file

package roster

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	pilog "github.com/mauromedda/pi-mention-go/internal/log"
	"github.com/mauromedda/pi-mention-go/pkg/mention"
)

const frontmatterDelimiter = "---"

// ParseFrontmatter extracts YAML frontmatter from Markdown content.
// It returns the parsed frontmatter as T, the remaining body, and any error.
// If no frontmatter is found, it returns (zero T, original content, nil).
func ParseFrontmatter[T any](content string) (T, string, error) {
	var zero T

	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, frontmatterDelimiter+"\n") {
		return zero, content, nil
	}
	rest := normalized[len(frontmatterDelimiter)+1:]

	var yamlContent, afterClosing string
	if strings.HasPrefix(rest, frontmatterDelimiter+"\n") || rest == frontmatterDelimiter {
		afterClosing = rest[len(frontmatterDelimiter):]
	} else {
		before, after, ok := strings.Cut(rest, "\n"+frontmatterDelimiter)
		if !ok {
			return zero, "", errors.New("unterminated frontmatter: missing closing ---")
		}
		yamlContent, afterClosing = before, after
	}

	var result T
	if err := yaml.Unmarshal([]byte(yamlContent), &result); err != nil {
		return zero, "", fmt.Errorf("parse frontmatter YAML: %w", err)
	}
	return result, strings.TrimPrefix(afterClosing, "\n"), nil
}

// Dir reads every *.md profile in Path. A profile's frontmatter holds the
// entry fields; id defaults to the file name without extension and
// display_name to the body's first "# " heading.
type Dir struct {
	Path string
}

// FetchAll implements mention.RosterProvider. Profiles are read in file name
// order; unreadable or malformed profiles are logged and skipped.
func (d Dir) FetchAll(ctx context.Context) ([]mention.Candidate, error) {
	files, err := filepath.Glob(filepath.Join(d.Path, "*.md"))
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(d.Path); err != nil {
		return nil, fmt.Errorf("read roster dir: %w", err)
	}
	slices.Sort(files)

	var out []mention.Candidate
	seen := make(map[string]bool, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, ok, err := readProfile(path)
		if err != nil {
			pilog.Warn("roster: skipping profile %s: %v", path, err)
			continue
		}
		if !ok || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out, nil
}

func readProfile(path string) (mention.Candidate, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mention.Candidate{}, false, err
	}
	fm, body, err := ParseFrontmatter[entry](string(data))
	if err != nil {
		return mention.Candidate{}, false, err
	}

	id := strings.TrimSpace(fm.ID)
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	name := strings.TrimSpace(fm.DisplayName)
	if name == "" {
		name = firstHeading(body)
	}
	if name == "" {
		return mention.Candidate{}, false, nil
	}
	return mention.Candidate{ID: id, DisplayName: name, Secondary: strings.TrimSpace(fm.Secondary)}, true, nil
}

func firstHeading(body string) string {
	for line := range strings.SplitSeq(body, "\n") {
		if h, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok {
			return strings.TrimSpace(h)
		}
	}
	return ""
}
