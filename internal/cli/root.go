package cli

import (
	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/clock"
	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root cobra command. Run without a subcommand it
// behaves like "tsgen now".
func NewRootCommand() *cobra.Command {
	return newRootCommand(clock.RealClock{})
}

func newRootCommand(clk clock.Clock) *cobra.Command {
	nowOpts := &nowOptions{count: 1}

	rootCmd := &cobra.Command{
		Use:   "tsgen",
		Short: "Workshop pipeline timestamp generator",
		Long: `tsgen prints timestamps of the form TSYYYYMMDD.HHMMSS taken from the
local wall clock, with one-second resolution. Pipeline steps use them to tag
runs and output artifacts.

It can also run as a small HTTP service exposing the same timestamps
together with Prometheus metrics.`,
		Version:      version.Get().String(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(cmd, clk, nowOpts)
		},
	}

	rootCmd.AddCommand(newNowCommand(clk))
	rootCmd.AddCommand(NewServeCommand())

	return rootCmd
}
