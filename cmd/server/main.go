// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-points-ledger/internal/config"
	"github.com/MKhiriev/go-points-ledger/internal/handler"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/internal/server"
	"github.com/MKhiriev/go-points-ledger/internal/service"
	"github.com/MKhiriev/go-points-ledger/internal/store"
	"github.com/MKhiriev/go-points-ledger/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("points-ledger")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storage, err := store.NewStorage(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage")
	}

	if err = run(storage, cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		_ = storage.Close()
		os.Exit(1)
	}

	if err = storage.Close(); err != nil {
		log.Error().Err(err).Msg("error closing storage")
	}
}

func run(storage store.AccountStorage, cfg *config.StructuredConfig, log *logger.Logger) error {
	services, err := service.NewServices(storage, *cfg, log)
	if err != nil {
		return fmt.Errorf("create services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	return srv.RunServer()
}
