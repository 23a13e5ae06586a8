package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-file-drop/internal/adapter"
	"github.com/MKhiriev/go-file-drop/internal/client"
	"github.com/MKhiriev/go-file-drop/internal/config"
	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/MKhiriev/go-file-drop/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	logLevel := os.Getenv("APP_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "warn"
	}
	log := logger.NewClientLogger("file-drop-client", logLevel)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app := client.NewApp(cfg, adapter.NewHTTPServerAdapter, buildInfo, log)

	if err = app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
