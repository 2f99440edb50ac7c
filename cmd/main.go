package main

import (
	"context"
	"log/slog"
	"os"

	"bookshelf_cli/config"
	"bookshelf_cli/data/session"
	"bookshelf_cli/internal/apiclient"
	"bookshelf_cli/internal/router"
	"bookshelf_cli/internal/service/authService"
	"bookshelf_cli/internal/service/bookService"
	"bookshelf_cli/internal/transport/cli"
	"bookshelf_cli/utils"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	ctx := utils.CreateCtxWithRqID(context.Background())

	sessionStore := session.NewFileStore(cfg.SessionFile)

	gateway := apiclient.New(cfg)

	auth := authService.New(gateway, sessionStore)
	auth.Restore(ctx)

	books := bookService.New(cfg, gateway)

	appRouter := router.New(auth)

	app := cli.New(cfg, appRouter, auth, books)

	if err := app.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelError
	}

	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
