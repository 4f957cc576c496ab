// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-points-ledger/internal/adapter"
	"github.com/MKhiriev/go-points-ledger/internal/client"
	"github.com/MKhiriev/go-points-ledger/internal/config"
	"github.com/MKhiriev/go-points-ledger/internal/crypto"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/internal/tui"
	"github.com/MKhiriev/go-points-ledger/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ledgerctl: %v\n", err)
		return 2
	}

	log := logger.NewClientLogger("ledgerctl", cfg.Verbose)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		return 1
	}

	ui := tui.New(os.Stdin, os.Stdout, log)

	app, err := client.NewApp(cfg, crypto.NewKeyStore(), serverAdapter, ui, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		fmt.Fprint(os.Stderr, tui.RenderError(err))
		if errors.Is(err, client.ErrUsage) {
			return 2
		}
		return 1
	}
	return 0
}
