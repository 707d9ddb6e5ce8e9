package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dminhvu/GSD-222/internal/errors"
	"github.com/dminhvu/GSD-222/internal/ledger"
)

func newProcessCommand() *cobra.Command {
	var (
		output      string
		showSummary bool
	)

	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Normalize a ledger export to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", path)
			}

			table, err := ledger.Normalize(data, filepath.Base(path))
			if err != nil {
				return err
			}

			csvBytes, err := table.CSV()
			if err != nil {
				return errors.Wrap(err, "failed to write CSV")
			}

			if showSummary {
				fmt.Fprintln(cmd.ErrOrStderr(), ledger.Summarize(table).String())
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(csvBytes)
				return err
			}

			if err := os.WriteFile(output, csvBytes, 0o644); err != nil {
				return errors.Wrapf(err, "failed to write %s", output)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d records to %s\n", table.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the CSV to this file instead of stdout")
	cmd.Flags().BoolVar(&showSummary, "summary", false, "print balance statistics to stderr")

	return cmd
}
