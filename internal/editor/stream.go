package editor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/yacobolo/csscribe"
	"github.com/yacobolo/csscribe/internal/termui"
)

// Stream reads the active line from In and writes replacements to Out, so
// the CLI can run as an editor filter (":.!csscribe transform").
//
// A filter replaces its input with its output. Callers must Flush once the
// action has run so a line that was not replaced is written back unchanged.
type Stream struct {
	In       io.Reader
	Out      io.Writer
	Reporter *termui.Reporter

	r        *bufio.Reader
	line     *csscribe.Line
	raw      string
	replaced bool
	flushed  bool
}

// NewStream returns a pipe host.
func NewStream(in io.Reader, out io.Writer, reporter *termui.Reporter) *Stream {
	return &Stream{In: in, Out: out, Reporter: reporter}
}

func (s *Stream) reader() *bufio.Reader {
	if s.r == nil {
		s.r = bufio.NewReader(s.In)
	}
	return s.r
}

// ActiveLine returns the first line of In. Empty input yields
// csscribe.ErrNoActiveLine. The line is read once and cached.
func (s *Stream) ActiveLine(_ context.Context) (csscribe.Line, error) {
	if s.line != nil {
		return *s.line, nil
	}

	text, err := s.reader().ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return csscribe.Line{}, fmt.Errorf("read stdin: %w", err)
	}
	if text == "" {
		return csscribe.Line{}, csscribe.ErrNoActiveLine
	}

	s.raw = text
	s.line = &csscribe.Line{Index: 0, Text: trimEOL(text)}
	return *s.line, nil
}

// ReplaceLine writes text followed by a newline to Out.
func (s *Stream) ReplaceLine(_ context.Context, _ csscribe.Line, text string) error {
	if _, err := fmt.Fprintln(s.Out, text); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	s.replaced = true
	return nil
}

// Flush echoes the active line to Out exactly as it was read unless
// ReplaceLine ran, then copies any remaining input through. It is safe to
// call more than once.
func (s *Stream) Flush() error {
	if s.flushed {
		return nil
	}
	s.flushed = true

	if s.line == nil {
		if _, err := s.ActiveLine(context.Background()); err != nil {
			if errors.Is(err, csscribe.ErrNoActiveLine) {
				return nil
			}
			return err
		}
	}
	if !s.replaced {
		if _, err := io.WriteString(s.Out, s.raw); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
	}
	if _, err := io.Copy(s.Out, s.reader()); err != nil {
		return fmt.Errorf("copy stdin: %w", err)
	}
	return nil
}

// ShowInfo prints msg through the reporter.
func (s *Stream) ShowInfo(msg string) {
	s.Reporter.Info(msg)
}

// ShowError prints msg through the reporter.
func (s *Stream) ShowError(msg string) {
	s.Reporter.Error(msg)
}
