// ABOUTME: Settings loading with global + project YAML merge
// ABOUTME: Bridges the merged values into mention filter, detector and panel options

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	pilog "github.com/mauromedda/pi-mention-go/internal/log"
	"github.com/mauromedda/pi-mention-go/pkg/mention"
)

// Settings holds the merged configuration.
type Settings struct {
	LogLevel string        `yaml:"log_level,omitempty"`
	LogFile  string        `yaml:"log_file,omitempty"`
	Theme    string        `yaml:"theme,omitempty"` // built-in name or JSON file
	Mention  MentionConfig `yaml:"mention,omitempty"`
	Panel    PanelConfig   `yaml:"panel,omitempty"`
	Roster   RosterConfig  `yaml:"roster,omitempty"`
}

// MentionConfig tunes detection and filtering.
type MentionConfig struct {
	MatchSecondary      bool   `yaml:"match_secondary,omitempty"`
	MaxResults          int    `yaml:"max_results,omitempty"`
	MatchMode           string `yaml:"match_mode,omitempty"`
	RequireWordBoundary bool   `yaml:"require_word_boundary,omitempty"`
}

// PanelConfig sizes the suggestion panel, in terminal cells.
type PanelConfig struct {
	Width   int  `yaml:"width,omitempty"`
	Height  int  `yaml:"height,omitempty"` // visible rows
	Margin  int  `yaml:"margin,omitempty"`
	Preview bool `yaml:"preview,omitempty"` // markdown preview of the buffer
}

// RosterConfig lists roster sources.
type RosterConfig struct {
	Files         []string      `yaml:"files,omitempty"`
	Dirs          []string      `yaml:"dirs,omitempty"` // directories of Markdown profiles
	Concurrency   int           `yaml:"concurrency,omitempty"`
	Watch         bool          `yaml:"watch,omitempty"`
	WatchInterval time.Duration `yaml:"watch_interval,omitempty"`
}

// Defaults returns the built-in settings every loaded file is merged onto.
func Defaults() *Settings {
	return &Settings{
		LogLevel: "info",
		Mention:  MentionConfig{MatchMode: mention.MatchSubstring.String()},
		Panel:    PanelConfig{Width: 32, Height: 6, Margin: 1},
		Roster:   RosterConfig{Concurrency: 4, WatchInterval: 2 * time.Second},
	}
}

// Load reads and merges global and project-local settings onto Defaults.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	return LoadWithHome(projectRoot, HomeDir())
}

// LoadWithHome is Load with an explicit home directory.
func LoadWithHome(projectRoot, home string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile(home))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(merge(Defaults(), global), project)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. Environment references are
// expanded and relative roster paths are resolved against the file's
// directory. A missing file yields zero Settings and an ErrNotExist error.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	ResolveEnvVars(&s)
	base := filepath.Dir(path)
	s.Roster.Files = resolvePaths(base, s.Roster.Files)
	s.Roster.Dirs = resolvePaths(base, s.Roster.Dirs)
	pilog.Debug("config: loaded %s", path)
	return &s, nil
}

func resolvePaths(base string, paths []string) []string {
	var out []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		out = append(out, p)
	}
	return out
}

// merge overlays non-zero values of over onto base.
func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		return base
	}

	result := *base

	if over.LogLevel != "" {
		result.LogLevel = over.LogLevel
	}
	if over.LogFile != "" {
		result.LogFile = over.LogFile
	}
	if over.Theme != "" {
		result.Theme = over.Theme
	}

	if over.Mention.MatchSecondary {
		result.Mention.MatchSecondary = true
	}
	if over.Mention.MaxResults != 0 {
		result.Mention.MaxResults = over.Mention.MaxResults
	}
	if over.Mention.MatchMode != "" {
		result.Mention.MatchMode = over.Mention.MatchMode
	}
	if over.Mention.RequireWordBoundary {
		result.Mention.RequireWordBoundary = true
	}

	if over.Panel.Width != 0 {
		result.Panel.Width = over.Panel.Width
	}
	if over.Panel.Height != 0 {
		result.Panel.Height = over.Panel.Height
	}
	if over.Panel.Margin != 0 {
		result.Panel.Margin = over.Panel.Margin
	}
	if over.Panel.Preview {
		result.Panel.Preview = true
	}

	if len(over.Roster.Files) > 0 {
		result.Roster.Files = append([]string(nil), over.Roster.Files...)
	}
	if len(over.Roster.Dirs) > 0 {
		result.Roster.Dirs = append([]string(nil), over.Roster.Dirs...)
	}
	if over.Roster.Concurrency != 0 {
		result.Roster.Concurrency = over.Roster.Concurrency
	}
	if over.Roster.Watch {
		result.Roster.Watch = true
	}
	if over.Roster.WatchInterval != 0 {
		result.Roster.WatchInterval = over.Roster.WatchInterval
	}

	return &result
}

// Validate rejects values the engine or UI cannot use.
func (s *Settings) Validate() error {
	var errs []error
	if _, ok := pilog.ParseLevel(s.LogLevel); !ok && s.LogLevel != "" {
		errs = append(errs, fmt.Errorf("log_level: unknown level %q", s.LogLevel))
	}
	if _, ok := mention.ParseMatchMode(s.Mention.MatchMode); !ok {
		errs = append(errs, fmt.Errorf("mention.match_mode: unknown mode %q", s.Mention.MatchMode))
	}
	if s.Mention.MaxResults < 0 {
		errs = append(errs, errors.New("mention.max_results: must not be negative"))
	}
	if s.Panel.Width < 0 || s.Panel.Height < 0 || s.Panel.Margin < 0 {
		errs = append(errs, errors.New("panel: sizes must not be negative"))
	}
	if s.Roster.Concurrency < 0 {
		errs = append(errs, errors.New("roster.concurrency: must not be negative"))
	}
	return errors.Join(errs...)
}

// FilterOptions converts the mention section for mention.Filter.
func (s *Settings) FilterOptions() mention.FilterOptions {
	mode, _ := mention.ParseMatchMode(s.Mention.MatchMode)
	return mention.FilterOptions{
		MatchSecondary: s.Mention.MatchSecondary,
		MaxResults:     s.Mention.MaxResults,
		Mode:           mode,
	}
}

// DetectorOptions converts the mention section for trigger detection.
func (s *Settings) DetectorOptions() mention.Detector {
	return mention.Detector{RequireWordBoundary: s.Mention.RequireWordBoundary}
}

// Resolver returns the panel clamp resolver, margin in cells.
func (s *Settings) Resolver() mention.Resolver {
	return mention.Clamp{Margin: float64(s.Panel.Margin)}
}
