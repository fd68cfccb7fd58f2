package main

import (
	"context"
	"fmt"

	"offerdeck/internal/blob"
	"offerdeck/internal/config"
	httphandler "offerdeck/internal/handler/http"
	"offerdeck/internal/logger"
	"offerdeck/internal/server"
	"offerdeck/internal/service"
	"offerdeck/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("offerdeck-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	blobStore, err := blob.NewStore(ctx, cfg.Blob, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob store")
	}

	services := service.NewServices(repositories, blobStore, cfg, log)
	handler := httphandler.NewHandler(services, cfg.App, log)

	srv := server.NewServer(handler.Init(), cfg.Server, log)
	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
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

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
