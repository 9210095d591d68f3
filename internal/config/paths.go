// ABOUTME: Standard filesystem paths for pi-mention configuration and logs
// ABOUTME: Resolves ~/.pi-mention/ for global and .pi-mention/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".pi-mention"
	projectDirName = ".pi-mention"

	configFileName      = "config.yaml"
	keybindingsFileName = "keybindings.json"
)

// HomeDir returns the user's home directory, or "." when it cannot be found.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// GlobalDir returns the user-global config directory under home.
func GlobalDir(home string) string {
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile(home string) string {
	return filepath.Join(GlobalDir(home), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// GlobalKeybindingsFile returns the path to the global keybindings file.
func GlobalKeybindingsFile(home string) string {
	return filepath.Join(GlobalDir(home), keybindingsFileName)
}

// LocalKeybindingsFile returns the path to the project keybindings file.
func LocalKeybindingsFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), keybindingsFileName)
}

// DefaultLogFile is where the interactive UI logs when no log_file is set,
// since stderr belongs to the terminal.
func DefaultLogFile(home string) string {
	return filepath.Join(GlobalDir(home), "pi-mention.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
