package main

import (
	"fmt"

	"github.com/MKhiriev/go-file-drop/internal/config"
	"github.com/MKhiriev/go-file-drop/internal/handler"
	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/MKhiriev/go-file-drop/internal/server"
	"github.com/MKhiriev/go-file-drop/internal/service"
	"github.com/MKhiriev/go-file-drop/internal/store"
	"github.com/MKhiriev/go-file-drop/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("file-drop-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("file-drop-server", cfg.App.LogLevel)

	// a version injected at build time wins over the default one
	if buildVersion != "" && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("storage_backend", cfg.Storage.Backend).
		Strs("allowed_extensions", cfg.Upload.AllowedExtensions).
		Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
