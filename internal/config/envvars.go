// ABOUTME: Environment variable expansion in config string fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in the path-like fields of s.
func ResolveEnvVars(s *Settings) {
	s.LogFile = expandEnv(s.LogFile)
	s.Theme = expandEnv(s.Theme)
	for i, f := range s.Roster.Files {
		s.Roster.Files[i] = expandEnv(f)
	}
	for i, d := range s.Roster.Dirs {
		s.Roster.Dirs[i] = expandEnv(d)
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
