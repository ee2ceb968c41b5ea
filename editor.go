package csscribe

import (
	"context"
	"errors"
)

// ErrNoActiveLine is returned by an Editor when there is no line to act on.
// Actions treat it as a silent no-op.
var ErrNoActiveLine = errors.New("no active line")

// Line is the text of the active line at the moment an action was invoked.
type Line struct {
	Index int    // 0-based line index in the host document
	Text  string // Line content without its line ending
}

// Editor is the host the actions run against.
type Editor interface {
	// ActiveLine returns the line under the cursor, or ErrNoActiveLine.
	ActiveLine(ctx context.Context) (Line, error)
	// ReplaceLine replaces the full range of line with text. The text may
	// span several lines.
	ReplaceLine(ctx context.Context, line Line, text string) error
	// ShowInfo displays an informational message to the user.
	ShowInfo(msg string)
	// ShowError displays an error message to the user.
	ShowError(msg string)
}
