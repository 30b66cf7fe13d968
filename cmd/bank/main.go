package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-bank/internal/cli"
	"github.com/MKhiriev/go-bank/internal/config"
	"github.com/MKhiriev/go-bank/internal/logger"
	"github.com/MKhiriev/go-bank/internal/service"
	"github.com/MKhiriev/go-bank/internal/store"
	"github.com/MKhiriev/go-bank/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("go-bank")

	cfg, args, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		err = fmt.Errorf("%w: %w", service.ErrSystemInitialization, err)
		printError(err)
		log.Fatal().Err(err).Msg("error creating storages")
	}

	bank := service.NewBank(storages, cfg.App, log)
	app := cli.NewApp(bank, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdout, log)

	err = app.Run(ctx, args)

	if closeErr := storages.Close(); closeErr != nil {
		log.Err(closeErr).Msg("error closing storages")
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %s\n", cli.MessageFromError(err))
}
