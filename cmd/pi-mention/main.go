// ABOUTME: CLI entry point for pi-mention: a terminal editor with @-mention autocomplete
// ABOUTME: Loads config, keybindings, theme and rosters, then runs interactive or headless mode

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	// It fixes the dark-background answer in its init() so Bubble Tea never
	// sends OSC 10/11 queries whose async replies leak into the editor.
	"github.com/mauromedda/pi-mention-go/internal/termfix"

	"golang.org/x/term"

	"github.com/mauromedda/pi-mention-go/internal/config"
	"github.com/mauromedda/pi-mention-go/internal/eventbus"
	pilog "github.com/mauromedda/pi-mention-go/internal/log"
	"github.com/mauromedda/pi-mention-go/internal/mode/interactive"
	"github.com/mauromedda/pi-mention-go/internal/mode/print"
	"github.com/mauromedda/pi-mention-go/pkg/mention"
	"github.com/mauromedda/pi-mention-go/pkg/mention/roster"
	"github.com/mauromedda/pi-mention-go/pkg/tui/key"
	"github.com/mauromedda/pi-mention-go/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("pi-mention %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the initialization sequence and dispatches to the selected mode.
func run(args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	home := config.HomeDir()

	settings, err := config.LoadWithHome(cwd, home)
	if err != nil {
		return err
	}
	if err := applyOverrides(settings, args); err != nil {
		return err
	}

	kb, err := config.LoadKeybindingsFiles(config.GlobalKeybindingsFile(home), config.LocalKeybindingsFile(cwd))
	if err != nil {
		return fmt.Errorf("loading keybindings: %w", err)
	}

	if args.keysTemplate {
		tmpl, err := kb.ExportTemplate()
		if err != nil {
			return err
		}
		fmt.Println(tmpl)
		return nil
	}
	if args.explain {
		fmt.Print(config.Explain(settings, kb))
		return nil
	}

	keymap, err := kb.Keymap()
	if err != nil {
		return fmt.Errorf("keybindings: %w", err)
	}

	th, err := theme.Resolve(settings.Theme)
	if err != nil {
		return err
	}
	theme.Set(th)
	termfix.SetForTheme(th.Name)

	if level, ok := pilog.ParseLevel(settings.LogLevel); ok {
		pilog.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reporter, closeReporter, err := buildReporter(args.report)
	if err != nil {
		return err
	}
	defer closeReporter()

	provider := buildProvider(settings)
	interactiveMode := !args.print && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))

	if !interactiveMode {
		return runHeadless(ctx, args, settings, keymap, provider, reporter)
	}

	logPath := settings.LogFile
	if logPath == "" {
		logPath = config.DefaultLogFile(home)
	}
	if err := config.EnsureDir(filepath.Dir(logPath)); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	defer pilog.SetOutput(pilog.SetOutput(logFile))
	pilog.Info("pi-mention %s starting in %s", version, cwd)

	var watcher *config.Watcher
	if settings.Roster.Watch {
		watcher = config.NewWatcher(append(append([]string{}, settings.Roster.Files...), settings.Roster.Dirs...))
	}

	res, err := interactive.Run(ctx, interactive.Options{
		Settings: settings,
		Keymap:   keymap,
		Provider: provider,
		Reporter: reporter,
		Watcher:  watcher,
		Text:     args.text,
	})
	if err != nil {
		return err
	}
	fmt.Println(res.Text)
	return nil
}

// applyOverrides layers command-line flags over the loaded settings.
func applyOverrides(s *config.Settings, args cliArgs) error {
	if args.match != "" {
		s.Mention.MatchMode = args.match
	}
	if args.theme != "" {
		s.Theme = args.theme
	}
	if args.logLevel != "" {
		s.LogLevel = args.logLevel
	}
	if args.logFile != "" {
		s.LogFile = args.logFile
	}
	if files := splitList(args.rosters); len(files) > 0 {
		s.Roster.Files = files
	}
	if dirs := splitList(args.rosterDirs); len(dirs) > 0 {
		s.Roster.Dirs = dirs
	}
	if args.watch {
		s.Roster.Watch = true
	}
	return s.Validate()
}

// buildProvider merges every configured roster source; nil when none is set.
func buildProvider(s *config.Settings) mention.RosterProvider {
	var providers []mention.RosterProvider
	for _, f := range s.Roster.Files {
		providers = append(providers, roster.File{Path: f})
	}
	for _, d := range s.Roster.Dirs {
		providers = append(providers, roster.Dir{Path: d})
	}
	if len(providers) == 0 {
		pilog.Warn("no roster configured; suggestions will be empty")
		return nil
	}
	return roster.Merge(s.Roster.Concurrency, providers...)
}

// buildReporter publishes attachment changes on an event bus, logging each
// one, and optionally appends them to a JSON-lines file.
func buildReporter(path string) (mention.AttachmentReporter, func(), error) {
	bus := eventbus.New[[]mention.Candidate]()
	unsubscribe := bus.Subscribe(func(items []mention.Candidate) {
		pilog.Debug("attachments: %d", len(items))
	})

	reporters := []mention.AttachmentReporter{roster.NewPublisher(bus)}
	closers := []func(){unsubscribe}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			unsubscribe()
			return nil, nil, fmt.Errorf("opening report file: %w", err)
		}
		reporters = append(reporters, roster.NewJSONLines(f))
		closers = append(closers, func() { _ = f.Close() })
	}

	return roster.Tee(reporters...), func() {
		for _, c := range closers {
			c()
		}
	}, nil
}

func runHeadless(ctx context.Context, args cliArgs, s *config.Settings, km mention.Keymap, p mention.RosterProvider, r mention.AttachmentReporter) error {
	text := args.text
	if text == "" && !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = strings.TrimSuffix(string(data), "\n")
	}

	keys, err := key.ParseList(args.keys)
	if err != nil {
		return fmt.Errorf("--keys: %w", err)
	}

	return print.Run(ctx,
		print.Config{OutputFormat: args.format, Text: text, Keys: keys},
		print.Deps{Settings: s, Keymap: km, Provider: p, Reporter: r},
		os.Stdout,
	)
}
