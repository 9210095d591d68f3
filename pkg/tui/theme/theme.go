// ABOUTME: Semantic color theme for the mention UI: Color, Palette, Theme
// ABOUTME: Palette roles cover the editor, the suggestion panel and the status lines

package theme

// Color is a raw ANSI SGR code applied to a span of text.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// Apply wraps text in the code and a reset. An empty Color is a no-op.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + "\x1b[0m"
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// Bold returns c with bold prepended.
func (c Color) Bold() Color {
	return Color{code: "\x1b[1m" + c.code}
}

// Palette maps UI roles to colors.
type Palette struct {
	Text   Color // editor text
	Prompt Color // editor gutter
	Token  Color // committed @mentions in the buffer

	PanelBorder Color
	PanelHeader Color
	Candidate   Color // display name
	Secondary   Color // email / role column
	Selection   Color // highlighted row
	Empty       Color // "No matches" and loading rows

	Status Color
	Error  Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string  `json:"name"`
	Palette Palette `json:"palette"`
}

// DefaultPalette uses the 16 basic colors so it reads on any terminal.
func DefaultPalette() Palette {
	return Palette{
		Text:   NewColor("\x1b[0m"),
		Prompt: NewColor("\x1b[1m"),
		Token:  NewColor("\x1b[36m"),

		PanelBorder: NewColor("\x1b[90m"),
		PanelHeader: NewColor("\x1b[2m"),
		Candidate:   NewColor("\x1b[0m"),
		Secondary:   NewColor("\x1b[90m"),
		Selection:   NewColor("\x1b[7m"),
		Empty:       NewColor("\x1b[2m"),

		Status: NewColor("\x1b[2m"),
		Error:  NewColor("\x1b[31m"),
	}
}
