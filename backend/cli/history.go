package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskbar/backend/bridge"
)

func snapshotCmd(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Record today's summary and per-item history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withBridge(func(b *bridge.Bridge) error {
				summary, err := b.SaveDailySnapshot()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s: %d done, %d completed, streak %d\n",
					summary.Date, summary.TotalItemsDone, summary.ItemsCompleted, summary.StreakDays)
				return nil
			})
		},
	}
}

func exportCSVCmd(env *cmdEnv) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "export-csv <path>",
		Short: "Export daily summaries to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withBridge(func(b *bridge.Bridge) error {
				n, err := b.ExportCSV(args[0], days)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", n, args[0])
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&days, "days", "d", 0, "Number of days to export (default HISTORY_DAYS)")
	return cmd
}
