package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vocab-trainer/internal/config"
	"github.com/MKhiriev/go-vocab-trainer/internal/handler"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/server"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/internal/store"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vocab-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.HTTPAddress).Str("username", cfg.Username).Msg("received configs")

	storage := store.NewMemoryVocabularyStorage()
	services := service.NewServices(storage, log)

	user, err := services.AuthService.RegisterUser(context.Background(), models.User{Username: cfg.Username}, cfg.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("error seeding user")
	}
	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user seeded")

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
