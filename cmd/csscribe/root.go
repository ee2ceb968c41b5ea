package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/csscribe/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "csscribe",
	Short: "Record CSS variables and classes, and turn phrases into CSS",
	Long: `csscribe keeps a JSON dictionary of the CSS custom properties and class
names you use, and rewrites a line of natural language ("赤い背景",
"center the text") into CSS through an OpenAI-compatible completion service.

Run it as a Neovim remote plugin (csscribe nvim), as an editor filter
(:.!csscribe transform) or against a file line (--file styles.css --line 12).`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return configureLogging()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.String("config", defaultConfigFile, "Config file path")
	pf.String("storage-dir", "", "Directory holding user-dictionary.json (default: <user config dir>/csscribe)")
	pf.String("log-level", "warn", "Log level: debug|info|warn|error")
	pf.String("log-format", "fmt", "Log format: fmt|json")
	pf.Bool("color", false, "Force color output")
	pf.Bool("quiet", false, "Suppress informational messages")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(nvimCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", fixedValues("debug", "info", "warn", "error"))
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", fixedValues("fmt", "json"))
	_ = rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	_ = rootCmd.MarkPersistentFlagDirname("storage-dir")
}

func configureLogging() error {
	level := getStringWithFallback("log-level", "log-level", "warn")
	if err := logger.SetLogLevel(level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLogFormat(getStringWithFallback("log-format", "log-format", "fmt"))
	return nil
}
