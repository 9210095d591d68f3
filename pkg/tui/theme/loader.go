// ABOUTME: JSON theme files and name-or-path resolution for the theme setting
// ABOUTME: Unset palette fields inherit from DefaultPalette

package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"
)

// jsonPalette is the on-disk palette; fields are raw ANSI codes.
type jsonPalette struct {
	Text   string `json:"text"`
	Prompt string `json:"prompt"`
	Token  string `json:"token"`

	PanelBorder string `json:"panel_border"`
	PanelHeader string `json:"panel_header"`
	Candidate   string `json:"candidate"`
	Secondary   string `json:"secondary"`
	Selection   string `json:"selection"`
	Empty       string `json:"empty"`

	Status string `json:"status"`
	Error  string `json:"error"`
}

type jsonTheme struct {
	Name    string      `json:"name"`
	Palette jsonPalette `json:"palette"`
}

// LoadFile reads a JSON theme file. Missing palette fields fall back to
// DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	return &Theme{
		Name:    jt.Name,
		Palette: convertPalette(jt.Palette, DefaultPalette()),
	}, nil
}

// Resolve returns the built-in theme called nameOrPath, or loads it as a
// JSON file when it looks like a path. Empty selects the default.
func Resolve(nameOrPath string) (*Theme, error) {
	if nameOrPath == "" {
		return Builtin("default"), nil
	}
	if t := Builtin(nameOrPath); t != nil {
		return t, nil
	}
	if strings.ContainsRune(nameOrPath, os.PathSeparator) || strings.HasSuffix(nameOrPath, ".json") {
		return LoadFile(nameOrPath)
	}
	return nil, fmt.Errorf("unknown theme %q (built-in: %s)", nameOrPath, strings.Join(BuiltinNames(), ", "))
}

// convertPalette maps jsonPalette fields onto base by matching field names.
func convertPalette(jp jsonPalette, base Palette) Palette {
	p := base

	jpv := reflect.ValueOf(jp)
	pv := reflect.ValueOf(&p).Elem()
	jpt := jpv.Type()

	for i := range jpt.NumField() {
		jsonVal := jpv.Field(i).String()
		if jsonVal == "" {
			continue
		}
		pf := pv.FieldByName(jpt.Field(i).Name)
		if pf.IsValid() && pf.CanSet() {
			pf.Set(reflect.ValueOf(NewColor(jsonVal)))
		}
	}

	return p
}
