// Package cmd wires the redpath command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "redpath",
		Short:         "Normalize aged debtors exports into upload-ready CSVs",
		Long:          "redpath converts CSV and Excel aged debtors exports into a five-column CSV ready for upload, either from the command line or through a small web UI.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newServeCommand(),
		newProcessCommand(),
		newVersionCommand(),
	)

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCommand().Execute()
}
