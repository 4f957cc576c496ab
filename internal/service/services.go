// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-points-ledger/internal/config"
	"github.com/MKhiriev/go-points-ledger/internal/ledger"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/internal/store"
)

type Services struct {
	LedgerService  LedgerService
	AppInfoService AppInfoService
}

func NewServices(storage store.AccountStorage, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	ledgerService, err := NewLedgerService(storage, ledger.New(logger), cfg.Storage.Rent, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		LedgerService:  NewLedgerLoggingService(logger).Wrap(ledgerService),
		AppInfoService: appInfoService,
	}, nil
}
