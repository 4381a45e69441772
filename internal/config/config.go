package config

import "strings"

// Options is the configuration snapshot for one invocation. It is built
// once from the config file, environment and command-line flags, and is
// read-only afterwards.
type Options struct {
	MaxDepth       int // -1 means unbounded
	ShowHidden     bool
	ShowSize       bool
	ShowStats      bool
	UseColor       bool
	FollowSymlinks bool
	IgnorePatterns []string
	GitStatus      bool
	DiskUsage      bool
}

// Default returns the built-in option values.
func Default() Options {
	return Options{
		MaxDepth: -1,
		UseColor: true,
	}
}

// ParseIgnorePatterns splits a comma-separated pattern list, trimming
// surrounding whitespace and dropping empty entries. Patterns are either
// file extensions (without the dot) or exact names.
func ParseIgnorePatterns(input string) []string {
	var patterns []string
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		patterns = append(patterns, token)
	}
	return patterns
}
