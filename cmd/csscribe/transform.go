package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/csscribe"
)

var transformCmd = &cobra.Command{
	Use:     "transform",
	Aliases: []string{"tr"},
	Short:   "Replace a line of natural language with CSS",
	Long: `Send the active line to the completion service and replace it with the
returned CSS. The line is left untouched when the service fails or the API key
is missing; when reading stdin it is written back to stdout as it was read.

The API key is read from --api-key, transform.api-key in the config file,
CSSCRIBE_TRANSFORM__API_KEY or OPENAI_API_KEY.`,
	Example: `  echo "赤い背景" | csscribe transform
  :.!csscribe transform            (as a Vim filter)
  csscribe transform --file styles.css --line 3`,
	Args: cobra.NoArgs,
	RunE: runTransform,
}

func init() {
	f := transformCmd.Flags()
	addEditorFlags(f)
	f.Bool("diff", false, "Print a unified diff of the change to stderr (with --file)")
	f.String("api-key", "", "Completion service API key")
	f.String("prompt", "", "Instruction template (default: built-in prompt)")
	f.String("prompt-file", "", "Read the instruction template from a file")
	f.String("base-url", "", "OpenAI-compatible endpoint (default: https://api.openai.com/v1)")
	markStylesheetFlag(transformCmd)
	_ = transformCmd.MarkFlagFilename("prompt-file")
}

func runTransform(cmd *cobra.Command, _ []string) (err error) {
	reporter := newReporter(cmd)
	ed, err := newEditor(cmd, reporter)
	if err != nil {
		return err
	}
	defer func() { err = flushEditor(ed, err) }()

	settings, err := buildTransformSettings()
	if err != nil {
		return err
	}

	actions := &csscribe.Actions{
		Editor:     ed,
		Dispatcher: csscribe.NewDispatcher(staticSettings(settings)),
	}
	return actions.Transform(cmd.Context())
}
