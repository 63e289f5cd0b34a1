// Package cmd is the summarize CLI's cobra command tree: a rootCmd plus
// one file per subcommand, each registering itself from its own init().
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Run the TRAPI answer summarizer against local fixture files",
}

// Execute runs the command tree; errors are printed to stderr and exit
// non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
