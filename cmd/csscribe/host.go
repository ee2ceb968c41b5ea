package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/csscribe"
	"github.com/yacobolo/csscribe/internal/editor"
	"github.com/yacobolo/csscribe/internal/termui"
)

// addEditorFlags registers the flags selecting the CLI host.
func addEditorFlags(f *pflag.FlagSet) {
	f.String("file", "", "Edit a line of this file in place (default: read stdin, write stdout)")
	f.Int("line", 1, "1-based line number used with --file")
}

// newReporter returns a reporter for messages on the command's stderr.
func newReporter(cmd *cobra.Command) *termui.Reporter {
	useColors := termui.ShouldUseColors(getBoolWithFallback("color", "color", false), os.Stderr)
	return termui.NewReporter(cmd.ErrOrStderr(), useColors, getBoolWithFallback("quiet", "quiet", false))
}

// newEditor selects the file host when --file is set and the pipe host
// otherwise.
func newEditor(cmd *cobra.Command, reporter *termui.Reporter) (csscribe.Editor, error) {
	path := k.String("file")
	if path == "" {
		return editor.NewStream(cmd.InOrStdin(), cmd.OutOrStdout(), reporter), nil
	}

	line := getIntWithFallback("line", "line", 1)
	if line < 1 {
		return nil, fmt.Errorf("--line must be at least 1, got %d", line)
	}
	f := editor.NewFile(path, line, reporter)
	if getBoolWithFallback("diff", "diff", false) {
		f.DiffOut = cmd.ErrOrStderr()
	}
	return f, nil
}

// flushEditor writes back whatever a pipe host did not replace. err is the
// action's result and wins over a flush failure.
func flushEditor(ed csscribe.Editor, err error) error {
	s, ok := ed.(*editor.Stream)
	if !ok {
		return err
	}
	if ferr := s.Flush(); ferr != nil && err == nil {
		return ferr
	}
	return err
}

// prepareStorage resolves and creates the storage directory.
func prepareStorage() (string, error) {
	dir, err := storageDir()
	if err != nil {
		return "", err
	}
	if err := csscribe.EnsureStorageDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// staticSettings returns a SettingsFunc that always yields s.
func staticSettings(s csscribe.TransformSettings) csscribe.SettingsFunc {
	return func(context.Context) csscribe.TransformSettings {
		return s
	}
}
