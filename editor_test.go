package csscribe

import (
	"context"
	"strings"
)

// fakeEditor is an in-memory Editor over a slice of lines.
type fakeEditor struct {
	lines        []string
	cursor       int // -1 means no active line
	infos        []string
	errors       []string
	replacements int
}

func newFakeEditor(cursor int, lines ...string) *fakeEditor {
	return &fakeEditor{lines: lines, cursor: cursor}
}

func (e *fakeEditor) ActiveLine(_ context.Context) (Line, error) {
	if e.cursor < 0 || e.cursor >= len(e.lines) {
		return Line{}, ErrNoActiveLine
	}
	return Line{Index: e.cursor, Text: e.lines[e.cursor]}, nil
}

func (e *fakeEditor) ReplaceLine(_ context.Context, line Line, text string) error {
	e.replacements++
	replacement := strings.Split(text, "\n")
	lines := append([]string{}, e.lines[:line.Index]...)
	lines = append(lines, replacement...)
	e.lines = append(lines, e.lines[line.Index+1:]...)
	return nil
}

func (e *fakeEditor) ShowInfo(msg string) {
	e.infos = append(e.infos, msg)
}

func (e *fakeEditor) ShowError(msg string) {
	e.errors = append(e.errors, msg)
}
