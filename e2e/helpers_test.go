// ABOUTME: PTY harness for e2e tests: builds the pi-mention binary once and drives it
// ABOUTME: Collects terminal output in the background and waits for expected strings

package e2e

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"

	"github.com/mauromedda/pi-mention-go/pkg/tui/width"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
	buildLog  []byte
)

// binary builds cmd/pi-mention into a temp dir the first time it is called.
func binary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "pi-mention-e2e")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "pi-mention")
		cmd := exec.Command("go", "build", "-o", binPath, "../cmd/pi-mention")
		buildLog, buildErr = cmd.CombinedOutput()
	})
	if buildErr != nil {
		t.Fatalf("building pi-mention: %v\n%s", buildErr, buildLog)
	}
	return binPath
}

// workspace returns a temp dir holding a two-person roster, used as both
// HOME and the working directory so no user config leaks in.
func workspace(t *testing.T) (dir, rosterFile string) {
	t.Helper()
	dir = t.TempDir()
	rosterFile = filepath.Join(dir, "team.yaml")
	data := "candidates:\n" +
		"  - id: u1\n    display_name: John\n    secondary: john@acme.io\n" +
		"  - id: u2\n    display_name: Joanna\n"
	if err := os.WriteFile(rosterFile, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, rosterFile
}

func command(t *testing.T, dir string, args ...string) *exec.Cmd {
	t.Helper()
	cmd := exec.Command(binary(t), args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "HOME="+dir, "TERM=xterm-256color")
	return cmd
}

// session is a running binary attached to a pseudo-terminal.
type session struct {
	cmd  *exec.Cmd
	ptmx *os.File

	mu   sync.Mutex
	out  bytes.Buffer
	done chan error
}

func startSession(t *testing.T, dir string, args ...string) *session {
	t.Helper()
	cmd := command(t, dir, args...)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("starting pty: %v", err)
	}

	s := &session{cmd: cmd, ptmx: ptmx, done: make(chan error, 1)}
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.out.Write(buf[:n])
				s.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
	go func() { s.done <- cmd.Wait() }()
	return s
}

// output returns everything printed so far with escape sequences removed.
func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return width.StripANSI(s.out.String())
}

func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q; output:\n%s", want, s.output())
}

func (s *session) send(t *testing.T, text string) {
	t.Helper()
	if _, err := io.WriteString(s.ptmx, text); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

func (s *session) sendCtrl(t *testing.T, r rune) {
	t.Helper()
	s.send(t, string(r-'a'+1))
}

func (s *session) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case err := <-s.done:
		if err != nil {
			t.Fatalf("process exited with %v; output:\n%s", err, s.output())
		}
	case <-time.After(timeout):
		t.Fatalf("process did not exit within %s; output:\n%s", timeout, s.output())
	}
}

func (s *session) close() {
	_ = s.ptmx.Close()
	_ = s.cmd.Process.Kill() // no-op error once the process has exited
}
