package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"walletl10n/internal/adapters/cli"
	"walletl10n/internal/application"
	"walletl10n/internal/config"
	"walletl10n/internal/infrastructure/database"
	"walletl10n/internal/infrastructure/logger"
	"walletl10n/internal/infrastructure/tomlfile"
	"walletl10n/internal/infrastructure/tsfile"
	"walletl10n/internal/ports/output"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	log := logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	decoders := []output.ResourceDecoder{tsfile.NewDecoder(), tomlfile.NewCodec()}
	opts := []application.CatalogOption{
		application.WithLogger(log),
		application.WithFilePrefix(cfg.LocaleFilePrefix),
	}
	if cfg.PersistenceEnabled() {
		repo := database.NewLazyCatalogRepository(cfg.DatabaseURL)
		defer repo.Close()
		opts = append(opts, application.WithRepository(repo))
	}

	service := application.NewCatalogService(decoders, opts...)
	return cli.NewApp(cfg, service, decoders, log).Run(ctx, os.Args[1:])
}
