package termui

import (
	"fmt"
	"io"
)

// Reporter prints user-facing messages for the CLI hosts
type Reporter struct {
	w         io.Writer
	useColors bool
	quiet     bool
}

// NewReporter creates a reporter writing to w. A quiet reporter drops info
// messages but still prints errors.
func NewReporter(w io.Writer, useColors, quiet bool) *Reporter {
	return &Reporter{w: w, useColors: useColors, quiet: quiet}
}

// Info prints an informational message.
func (r *Reporter) Info(msg string) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleGreen, "✓", r.useColors), msg)
}

// Warn prints a warning.
func (r *Reporter) Warn(msg string) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleYellow, "⚠", r.useColors), msg)
}

// Error prints an error message.
func (r *Reporter) Error(msg string) {
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleRed, "✗", r.useColors), msg)
}

// Pluralize returns a formatted string with count and singular/plural form
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
