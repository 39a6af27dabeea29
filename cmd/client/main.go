package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vocab-trainer/internal/adapter"
	"github.com/MKhiriev/go-vocab-trainer/internal/client"
	"github.com/MKhiriev/go-vocab-trainer/internal/config"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/internal/store"
	"github.com/MKhiriev/go-vocab-trainer/internal/tui"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("vocab-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("vocab-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, cfg.App.SecretKey, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages.Credentials, serverAdapter, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services, buildInfo, cfg.App.QuizAdvanceDelay, log)

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
