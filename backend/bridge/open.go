package bridge

import (
	"log"

	"taskbar/backend/config"
	"taskbar/backend/host"
	"taskbar/backend/kvstore"
	"taskbar/backend/stats"
	"taskbar/backend/utils"
)

// Open wires a Bridge over the data directory and database named by cfg
// and runs first-run initialization. The returned func closes the
// database.
func Open(cfg *config.Config, logger *log.Logger) (*Bridge, func() error, error) {
	db, err := utils.InitDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() error { return utils.CloseDB(db) }

	b := New(Deps{
		Host:          host.NewStateStore(cfg.HostPath(), logger),
		KV:            kvstore.NewFileStore(cfg.StatePath(), logger),
		Stats:         stats.NewStore(db, logger),
		SelectionPath: cfg.SelectionPath(),
		SessionsPath:  cfg.SessionsPath(),
		SettingsPath:  cfg.SettingsPath(),
		Logger:        logger,
		TokenSecret:   cfg.JWTSecret,
		HistoryDays:   cfg.HistoryDays,
	})
	if err := b.Init(); err != nil {
		_ = closeDB()
		return nil, nil, err
	}
	return b, closeDB, nil
}
