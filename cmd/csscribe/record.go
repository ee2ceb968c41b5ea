package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/csscribe"
)

var recordCmd = &cobra.Command{
	Use:     "record",
	Aliases: []string{"rec"},
	Short:   "Record the CSS variables and classes of a line",
	Long: `Extract every "--name: value" declaration and ".class" token from the
active line and merge them into user-dictionary.json. Existing variables are
overwritten, classes are added once. When reading stdin the input is written
back unchanged, so the command also works as an editor filter.`,
	Example: `  echo ':root { --brand: #0af; }' | csscribe record
  csscribe record --file styles.css --line 12`,
	Args: cobra.NoArgs,
	RunE: runRecord,
}

func init() {
	addEditorFlags(recordCmd.Flags())
	markStylesheetFlag(recordCmd)
}

func runRecord(cmd *cobra.Command, _ []string) (err error) {
	reporter := newReporter(cmd)
	ed, err := newEditor(cmd, reporter)
	if err != nil {
		return err
	}
	defer func() { err = flushEditor(ed, err) }()

	dir, err := prepareStorage()
	if err != nil {
		return err
	}

	actions := &csscribe.Actions{
		Editor:   ed,
		Recorder: csscribe.NewRecorder(dir),
	}
	return actions.Record(cmd.Context())
}
