// Package cmd holds the command line entry points: the web server and a
// few maintenance commands against the content API.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"urmonov-web/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "urmonov-web",
	Short:         "Doctor Urmonov clinic website",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
