// Package editor provides the CLI hosts for csscribe's actions: a file
// buffer edited in place and a stdin/stdout pipe.
package editor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/yacobolo/csscribe"
	"github.com/yacobolo/csscribe/internal/termui"
)

// File edits one line of a file on disk.
type File struct {
	Path     string
	Number   int // 1-based line number of the active line
	Reporter *termui.Reporter
	DiffOut  io.Writer // When set, ReplaceLine writes a unified diff of each change here
}

// NewFile returns a host acting on line number of path.
func NewFile(path string, number int, reporter *termui.Reporter) *File {
	return &File{Path: path, Number: number, Reporter: reporter}
}

// ActiveLine reads the configured line. A line number outside the file
// yields csscribe.ErrNoActiveLine.
func (f *File) ActiveLine(_ context.Context) (csscribe.Line, error) {
	lines, err := f.readLines()
	if err != nil {
		return csscribe.Line{}, err
	}
	idx := f.Number - 1
	if idx < 0 || idx >= len(lines) {
		return csscribe.Line{}, csscribe.ErrNoActiveLine
	}
	return csscribe.Line{Index: idx, Text: trimEOL(lines[idx])}, nil
}

// ReplaceLine swaps the text of line, keeping its original line ending.
func (f *File) ReplaceLine(_ context.Context, line csscribe.Line, text string) error {
	info, err := os.Stat(f.Path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", f.Path, err)
	}
	lines, err := f.readLines()
	if err != nil {
		return err
	}
	if line.Index < 0 || line.Index >= len(lines) {
		return fmt.Errorf("line %d is outside %s", line.Index+1, f.Path)
	}

	before := strings.Join(lines, "")
	old := lines[line.Index]
	eol := old[len(trimEOL(old)):]
	if eol != "" {
		text = strings.ReplaceAll(text, "\n", eol)
	}
	lines[line.Index] = text + eol
	after := strings.Join(lines, "")

	if err := os.WriteFile(f.Path, []byte(after), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}

	if f.DiffOut != nil {
		_, _ = io.WriteString(f.DiffOut, udiff.Unified(f.Path, f.Path, before, after))
	}
	return nil
}

// ShowInfo prints msg through the reporter.
func (f *File) ShowInfo(msg string) {
	f.Reporter.Info(msg)
}

// ShowError prints msg through the reporter.
func (f *File) ShowError(msg string) {
	f.Reporter.Error(msg)
}

// readLines splits the file keeping each line's terminator.
func (f *File) readLines() ([]string, error) {
	// #nosec G304 - path is supplied by the user on the command line
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
