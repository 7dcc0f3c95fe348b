package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"taskbar/backend/bridge"
	"taskbar/backend/config"
	"taskbar/backend/utils"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Each call returns a fresh tree so
// tests can execute commands in isolation.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "taskbar",
		Short: "Daily progress tracker for a spaced-repetition host",
		Long: `taskbar tracks how far you got through today's due items.

The host application pushes its due tree to the local bridge; taskbar keeps
the per-day baseline, the item selection, named sessions and a daily
history database.

Examples:
  taskbar serve                        # Start the local bridge
  taskbar status                       # Show today's tasks
  taskbar snapshot                     # Record today's history rows
  taskbar export-csv stats.csv -d 30   # Export the last 30 days`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log to stderr")

	env := &cmdEnv{verbose: &verbose}
	rootCmd.AddCommand(
		serveCmd(env),
		statusCmd(env),
		snapshotCmd(env),
		exportCSVCmd(env),
		sessionsCmd(env),
		passwdCmd(env),
		tokenCmd(env),
	)
	return rootCmd
}

// cmdEnv carries what every subcommand needs to open the bridge.
type cmdEnv struct {
	verbose *bool
}

func (e *cmdEnv) load() (*config.Config, *log.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := utils.DiscardLogger()
	if *e.verbose {
		logger = utils.InitLogger(utils.LoggerConfig{
			Format:       cfg.LogFormat,
			Output:       os.Stderr,
			EnableColors: cfg.LogColors,
		})
	}
	return cfg, logger, nil
}

// withBridge opens the bridge for the duration of fn.
func (e *cmdEnv) withBridge(fn func(b *bridge.Bridge) error) error {
	cfg, logger, err := e.load()
	if err != nil {
		return err
	}
	b, closeDB, err := bridge.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()
	return fn(b)
}
