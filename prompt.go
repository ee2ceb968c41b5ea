package csscribe

import (
	_ "embed"
	"strings"
)

// defaultPrompt is the built-in instruction template sent as the system
// message when no override is configured.
//
//go:embed prompts/default.md
var defaultPrompt string

// DefaultPrompt returns the built-in instruction template.
func DefaultPrompt() string {
	return defaultPrompt
}

// resolvePrompt returns override unless it is blank.
func resolvePrompt(override string) string {
	if strings.TrimSpace(override) == "" {
		return defaultPrompt
	}
	return override
}
