// Package main provides the csscribe CLI and Neovim remote plugin host.
package main

import (
	"fmt"
	"os"

	"github.com/yacobolo/csscribe"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Errors raised by an action were already shown through the host.
		if !csscribe.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
