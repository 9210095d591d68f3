// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --print, --text, --keys, --roster, --match, --theme, --explain, --version

package main

import (
	"flag"
	"os"
	"strings"
)

type cliArgs struct {
	version      bool
	print        bool
	text         string
	keys         string
	format       string
	rosters      string
	rosterDirs   string
	report       string
	match        string
	theme        string
	logLevel     string
	logFile      string
	watch        bool
	explain      bool
	keysTemplate bool
}

func parseFlags() cliArgs {
	a, _ := parseArgs(flag.CommandLine, os.Args[1:])
	return a
}

// parseArgs registers the flags on fs and parses args.
func parseArgs(fs *flag.FlagSet, args []string) (cliArgs, error) {
	var a cliArgs

	fs.BoolVar(&a.version, "version", false, "Show version and exit")
	fs.BoolVar(&a.print, "print", false, "Headless mode even on a terminal")
	fs.StringVar(&a.text, "text", "", "Initial text (headless: typed rune by rune; default stdin)")
	fs.StringVar(&a.keys, "keys", "", "Headless: comma-separated keys pressed after the text (e.g. down,enter)")
	fs.StringVar(&a.format, "format", "text", "Headless output: text, json or stream-json")
	fs.StringVar(&a.rosters, "roster", "", "Comma-separated roster files (.json, .yaml); replaces roster.files")
	fs.StringVar(&a.rosterDirs, "roster-dir", "", "Comma-separated directories of Markdown profiles; replaces roster.dirs")
	fs.StringVar(&a.report, "report", "", "Append attachment reports as JSON lines to this file")
	fs.StringVar(&a.match, "match", "", "Match mode: substring, prefix or fuzzy")
	fs.StringVar(&a.theme, "theme", "", "Theme name or JSON theme file")
	fs.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&a.logFile, "log-file", "", "Log file (interactive mode default: ~/.pi-mention/pi-mention.log)")
	fs.BoolVar(&a.watch, "watch", false, "Reload roster files when they change")
	fs.BoolVar(&a.explain, "explain", false, "Print the effective configuration and exit")
	fs.BoolVar(&a.keysTemplate, "keys-template", false, "Print a keybindings.json template and exit")

	err := fs.Parse(args)
	return a, err
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
