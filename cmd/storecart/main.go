package main

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"storecart/internal/config"
	"storecart/internal/http/handlers"
	"storecart/internal/locale"
	applog "storecart/internal/log"
	"storecart/internal/repos"
)

func main() {
	cfg := config.Load()

	logger, err := applog.Init(cfg.LogMode, cfg.LogFile)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	applog.Info(nil, "config.loaded", cfg.Fields())

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		logger.Fatal("db.open", zap.Error(err))
	}
	defer db.Close()

	resolver, err := locale.NewResolver(cfg.SupportedCountries)
	if err != nil {
		logger.Fatal("locale.init", zap.Error(err))
	}
	if cfg.AdminTokenHash == "" {
		applog.Warn(nil, "admin.writes.disabled", nil)
	}

	app := handlers.NewApp(cfg, handlers.NewDeps(db, cfg, resolver))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		applog.Info(nil, "server.shutdown", nil)
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server.listen", zap.Error(err))
	}
}
