package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskbar/backend/bridge"
)

func sessionsCmd(env *cmdEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Import and export saved sessions",
	}
	cmd.AddCommand(
		sessionsExportCmd(env),
		sessionsImportCmd(env),
	)
	return cmd
}

func sessionsExportCmd(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the sessions document to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withBridge(func(b *bridge.Bridge) error {
				if err := b.ExportSessions(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Sessions exported to %s\n", args[0])
				return nil
			})
		},
	}
}

func sessionsImportCmd(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Replace the sessions document with a file's contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withBridge(func(b *bridge.Bridge) error {
				if err := b.ImportSessions(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sessions\n", len(b.Sessions().Sessions))
				return nil
			})
		},
	}
}
