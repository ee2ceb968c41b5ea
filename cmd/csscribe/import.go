package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/csscribe"
	"github.com/yacobolo/csscribe/internal/termui"
)

var importCmd = &cobra.Command{
	Use:   "import [patterns...]",
	Short: "Seed the dictionary from existing stylesheets",
	Long: `Parse CSS files and merge every custom property declaration and class
selector into user-dictionary.json. Patterns support "**"; files ignored by
.gitignore are skipped. Without arguments the import.paths config key is used.`,
	Example: `  csscribe import
  csscribe import "web/styles/**/*.css" tokens.css`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("gitignore", "", "Ignore file applied to relative paths (default: .gitignore)")
}

func runImport(cmd *cobra.Command, args []string) error {
	dir, err := prepareStorage()
	if err != nil {
		return err
	}

	im := csscribe.NewImporter(dir, csscribe.ImportConfig{
		Patterns:  importPaths(args),
		GitIgnore: getStringWithFallback("gitignore", "import.gitignore", ""),
	})

	result, err := im.Import(cmd.Context())
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	reporter := newReporter(cmd)
	for _, w := range result.Warnings {
		reporter.Warn(w)
	}
	reporter.Info(fmt.Sprintf("Scanned %s (%d ignored)",
		termui.Pluralize(result.FilesScanned, "file", "files"), result.FilesSkipped))
	reporter.Info(fmt.Sprintf("Added %s, updated %d, added %s",
		termui.Pluralize(len(result.Merged.AddedVariables), "variable", "variables"),
		len(result.Merged.UpdatedVariables),
		termui.Pluralize(len(result.Merged.AddedClasses), "class", "classes")))

	return nil
}
