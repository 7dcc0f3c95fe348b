package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskbar/backend/bridge"
)

func passwdCmd(env *cmdEnv) *cobra.Command {
	var disable bool

	cmd := &cobra.Command{
		Use:   "passwd [passphrase]",
		Short: "Set or clear the bridge passphrase",
		Long: `Set the passphrase required by the HTTP bridge.

With no argument the passphrase is read from stdin. --clear disables
protection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var passphrase string
			switch {
			case disable:
			case len(args) == 1:
				passphrase = args[0]
			default:
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read passphrase: %w", err)
				}
				passphrase = strings.TrimRight(line, "\r\n")
			}

			return env.withBridge(func(b *bridge.Bridge) error {
				if err := b.SetPassphrase(passphrase); err != nil {
					return err
				}
				if passphrase == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "Bridge protection disabled")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Passphrase updated")
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&disable, "clear", false, "Remove the passphrase")
	return cmd
}

func tokenCmd(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Mint a bridge access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withBridge(func(b *bridge.Bridge) error {
				token, err := b.IssueToken()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), token)
				return nil
			})
		},
	}
}
