// ABOUTME: Entry point for the interactive editor
// ABOUTME: Runs the Bubble Tea program full screen with mouse and focus reporting

package interactive

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pi-mention-go/pkg/mention"
)

// Result is the editor state when the program exits.
type Result struct {
	Text        string
	Attachments []mention.Candidate
}

// Run starts the editor and blocks until the user quits or ctx ends. The UI
// draws on stderr so stdout stays free for the final buffer.
func Run(ctx context.Context, opts Options) (Result, error) {
	m := New(ctx, opts)

	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
		tea.WithOutput(os.Stderr),
	)

	final, err := p.Run()
	// A cancelled ctx kills the program; that is a normal exit here.
	if err != nil && (!errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrProgramPanic)) {
		return Result{}, fmt.Errorf("bubble tea: %w", err)
	}
	if fm, ok := final.(Model); ok {
		m = fm
	}
	return Result{Text: m.Text(), Attachments: m.Attachments()}, nil
}
