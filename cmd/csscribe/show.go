package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/csscribe"
	"github.com/yacobolo/csscribe/internal/termui"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the recorded dictionary",
	Long:  `Print the variables and classes in user-dictionary.json as text, JSON or Markdown.`,
	Example: `  csscribe show
  csscribe show --format json | jq '.variables'
  csscribe show --format markdown > CSS.md`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().String("format", "text", "Output format: text|json|markdown")
	_ = showCmd.RegisterFlagCompletionFunc("format", fixedValues(
		string(csscribe.ReportText), string(csscribe.ReportJSON), string(csscribe.ReportMarkdown)))
}

func runShow(cmd *cobra.Command, _ []string) error {
	format, err := csscribe.ParseReportFormat(getStringWithFallback("format", "show.format", "text"))
	if err != nil {
		return err
	}

	dir, err := storageDir()
	if err != nil {
		return err
	}
	d, err := csscribe.LoadDictionary(csscribe.DictionaryPath(dir))
	if err != nil {
		return err
	}

	useColors := termui.ShouldUseColors(getBoolWithFallback("color", "color", false), os.Stdout)
	return csscribe.WriteReport(cmd.OutOrStdout(), d, format, useColors)
}
