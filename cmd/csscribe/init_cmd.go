package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .csscribe.yaml config file",
	Long:  `Create a .csscribe.yaml configuration file in the current directory with sensible defaults.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# csscribe configuration
# Docs: https://github.com/yacobolo/csscribe

# Shared settings
# storage-dir: ~/.config/csscribe   # default: <user config dir>/csscribe
log-level: warn                     # debug | info | warn | error
log-format: fmt                     # fmt | json
color: false
quiet: false

# Natural language to CSS
transform:
  # api-key: sk-...                 # prefer CSSCRIBE_TRANSFORM__API_KEY or OPENAI_API_KEY
  # base-url: https://api.openai.com/v1
  # prompt-file: prompts/css.md     # default: built-in prompt

# Stylesheet import
import:
  paths:
    - "**/*.css"

# Dictionary report
show:
  format: text                      # text | json | markdown
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
