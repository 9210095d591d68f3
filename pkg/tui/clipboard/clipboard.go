// ABOUTME: System clipboard write for the editor's copy command
// ABOUTME: Pipes text to the first platform clipboard tool found on PATH

package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable means no clipboard tool was found for this platform.
var ErrUnavailable = errors.New("no clipboard command available")

type command struct {
	name string
	args []string
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Write copies text to the system clipboard.
func Write(ctx context.Context, text string) error {
	for _, c := range commands(runtime.GOOS, os.Getenv) {
		path, err := lookPath(c.name)
		if err != nil {
			continue
		}
		// Output is not captured: xclip forks a child that keeps the pipes
		// open while it owns the selection.
		cmd := exec.CommandContext(ctx, path, c.args...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		return nil
	}
	return fmt.Errorf("%w on %s", ErrUnavailable, runtime.GOOS)
}

// commands lists the clipboard tools to try for goos, in preference order.
func commands(goos string, getenv func(string) string) []command {
	switch goos {
	case "darwin":
		return []command{{name: "pbcopy"}}
	case "windows":
		return []command{{name: "clip"}}
	case "linux", "freebsd", "openbsd", "netbsd":
		var cs []command
		if getenv("WAYLAND_DISPLAY") != "" {
			cs = append(cs, command{name: "wl-copy"})
		}
		return append(cs,
			command{name: "xclip", args: []string{"-selection", "clipboard"}},
			command{name: "xsel", args: []string{"--clipboard", "--input"}},
		)
	}
	return nil
}
