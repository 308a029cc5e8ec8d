package cli

import (
	"fmt"

	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/clock"
	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/timestamp"
	"github.com/spf13/cobra"
)

type nowOptions struct {
	count int
}

func newNowCommand(clk clock.Clock) *cobra.Command {
	opts := &nowOptions{}

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current timestamp",
		Long: `Print the current local time as TSYYYYMMDD.HHMMSS.

Example:
  tsgen now
  tsgen now --count 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(cmd, clk, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "number of timestamps to print, one clock read each")

	return cmd
}

func runNow(cmd *cobra.Command, clk clock.Clock, opts *nowOptions) error {
	if opts.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", opts.count)
	}

	gen := timestamp.NewGenerator(clk)
	out := cmd.OutOrStdout()
	for i := 0; i < opts.count; i++ {
		if _, err := fmt.Fprintln(out, gen.Now()); err != nil {
			return fmt.Errorf("failed to write timestamp: %w", err)
		}
	}
	return nil
}
