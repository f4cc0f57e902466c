package cli

import (
	"github.com/spf13/cobra"
)

func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show total, completed and in-progress counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openDashboard(cmd, rootOpts)
			if err != nil {
				return err
			}
			stats, _ := svc.Stats()
			return writeStats(cmd.OutOrStdout(), rootOpts.Format, stats)
		},
	}
}
