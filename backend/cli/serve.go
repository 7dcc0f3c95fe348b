package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"taskbar/backend/bridge"
	"taskbar/backend/routes"
	"taskbar/backend/utils"
)

func serveCmd(env *cmdEnv) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local HTTP bridge",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := env.load()
			if err != nil {
				return err
			}
			// serve always logs
			logger := utils.InitLogger(utils.LoggerConfig{
				Format:       cfg.LogFormat,
				EnableColors: cfg.LogColors,
			})

			b, closeDB, err := bridge.Open(cfg, logger)
			if err != nil {
				return err
			}
			defer closeDB()

			app := routes.NewApp(b, logger)

			go func() {
				quit := make(chan os.Signal, 1)
				signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
				<-quit
				logger.Println("Shutting down bridge")
				if _, err := b.SaveDailySnapshot(); err != nil {
					logger.Printf("Final snapshot failed: %v", err)
				}
				_ = app.Shutdown()
			}()

			if addr == "" {
				addr = cfg.Addr()
			}
			logger.Printf("Bridge listening on %s (data dir %s)", addr, cfg.DataDir)
			return app.Listen(addr)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default SERVER_HOST:SERVER_PORT)")
	return cmd
}
