package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/handler"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/server"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-blog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	services, err := service.NewServices(repositories, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	servers, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	servers.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
