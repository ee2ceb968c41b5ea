package main

import (
	"github.com/spf13/cobra"
)

// The "completion" command is cobra's default; commands register value
// completion for their own flags with these helpers.

// fixedValues completes a flag from a closed set of values.
func fixedValues(values ...string) cobra.CompletionFunc {
	return func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// markStylesheetFlag completes --file with stylesheet paths.
func markStylesheetFlag(cmd *cobra.Command) {
	_ = cmd.MarkFlagFilename("file", "css", "scss", "less")
}
