package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yacobolo/csscribe"
	"github.com/yacobolo/csscribe/internal/logger"
	"github.com/yacobolo/csscribe/internal/nvimhost"
)

var nvimCmd = &cobra.Command{
	Use:   "nvim",
	Short: "Serve csscribe as a Neovim remote plugin",
	Long: `Run as a Neovim remote plugin over stdin/stdout. Registers
:CssToggleRegistration, :CssRecord and :CssTransform.

Neovim only defines the commands once the plugin manifest is loaded. Write it
with --manifest (and --location to update a .vim file in place), then register
the host in init.vim.

g:csscribe_api_key and g:csscribe_prompt override the configured transform
settings and are read on every :CssTransform.`,
	Example: `  csscribe nvim --manifest csscribe --location ~/.config/nvim/plugin/csscribe.vim

  " init.vim
  function! s:StartCsscribe(host) abort
    return jobstart(['csscribe', 'nvim'], {'rpc': v:true})
  endfunction
  call remote#host#Register('csscribe', 'x', function('s:StartCsscribe'))`,
	Args: cobra.NoArgs,
	RunE: runNvim,
}

func init() {
	f := nvimCmd.Flags()
	f.String("manifest", "", "Print the plugin manifest for `host` instead of serving")
	f.String("location", "", "Write the manifest into this .vim file (with --manifest)")
	_ = nvimCmd.MarkFlagFilename("location", "vim")
}

func runNvim(cmd *cobra.Command, _ []string) error {
	manifest, _ := cmd.Flags().GetString("manifest")
	location, _ := cmd.Flags().GetString("location")
	if location != "" && manifest == "" {
		return fmt.Errorf("--location requires --manifest")
	}

	dir, err := prepareStorage()
	if err != nil {
		return err
	}
	settings, err := buildTransformSettings()
	if err != nil {
		return err
	}

	host := &nvimhost.Host{
		Session:  &csscribe.Session{},
		Recorder: csscribe.NewRecorder(dir),
		Settings: staticSettings(settings),
	}

	if manifest != "" {
		if location != "" {
			if err := ensureFile(location); err != nil {
				return err
			}
		}
		logger.L.WithField("host", manifest).Debug("writing neovim plugin manifest")
	} else {
		logger.L.WithField("storage_dir", dir).Info("starting neovim plugin host")
	}

	// plugin.Main parses os.Args with the flag package; cobra already
	// consumed them.
	os.Args = pluginArgs(os.Args[0], manifest, location)
	host.Main()
	return nil
}

// pluginArgs rebuilds the command line understood by plugin.Main.
func pluginArgs(prog, manifest, location string) []string {
	args := []string{prog}
	if manifest != "" {
		args = append(args, "-manifest", manifest)
	}
	if location != "" {
		args = append(args, "-location", location)
	}
	return args
}

// ensureFile creates path if it does not exist. The manifest writer only
// updates existing files.
func ensureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("create manifest file: %w", err)
	}
	return f.Close()
}
