// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Text:   NewColor("\x1b[97m"),
			Prompt: NewColor("\x1b[1m\x1b[38;5;214m"),
			Token:  NewColor("\x1b[38;5;117m"),

			PanelBorder: NewColor("\x1b[38;5;240m"),
			PanelHeader: NewColor("\x1b[38;5;245m"),
			Candidate:   NewColor("\x1b[97m"),
			Secondary:   NewColor("\x1b[38;5;245m"),
			Selection:   NewColor("\x1b[48;5;236m"),
			Empty:       NewColor("\x1b[2m"),

			Status: NewColor("\x1b[38;5;245m"),
			Error:  NewColor("\x1b[38;5;203m"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Text:   NewColor("\x1b[30m"),
			Prompt: NewColor("\x1b[1m\x1b[38;5;166m"),
			Token:  NewColor("\x1b[38;5;25m"),

			PanelBorder: NewColor("\x1b[38;5;249m"),
			PanelHeader: NewColor("\x1b[38;5;243m"),
			Candidate:   NewColor("\x1b[30m"),
			Secondary:   NewColor("\x1b[38;5;243m"),
			Selection:   NewColor("\x1b[48;5;254m"),
			Empty:       NewColor("\x1b[2m"),

			Status: NewColor("\x1b[38;5;243m"),
			Error:  NewColor("\x1b[38;5;160m"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Text:   NewColor("\x1b[0m"),
			Prompt: NewColor("\x1b[1m"),
			Token:  NewColor("\x1b[4m"),

			PanelBorder: NewColor("\x1b[2m"),
			PanelHeader: NewColor("\x1b[2m"),
			Candidate:   NewColor("\x1b[0m"),
			Secondary:   NewColor("\x1b[2m"),
			Selection:   NewColor("\x1b[7m"),
			Empty:       NewColor("\x1b[2m"),

			Status: NewColor("\x1b[2m"),
			Error:  NewColor("\x1b[1m\x1b[4m"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
