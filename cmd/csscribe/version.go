package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/yacobolo/csscribe/internal/completion"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/csscribe
//
// Builds installed with "go install ...@v1.0.0" report the module version.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of csscribe",
	Long:  `Print the csscribe version, the completion model used by transform and the Go toolchain it was built with.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "csscribe %s\n", resolveVersion(version, debug.ReadBuildInfo))
		fmt.Fprintf(cmd.OutOrStdout(), "model: %s\n", completion.Model)
		fmt.Fprintf(cmd.OutOrStdout(), "go: %s\n", runtime.Version())
	},
}

// resolveVersion prefers the ldflags value and falls back to the module
// version recorded by the Go toolchain.
func resolveVersion(v string, buildInfo func() (*debug.BuildInfo, bool)) string {
	if v != "dev" {
		return v
	}
	info, ok := buildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return v
	}
	return info.Main.Version
}
