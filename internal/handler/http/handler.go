// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-points-ledger/internal/auth"
	"github.com/MKhiriev/go-points-ledger/internal/config"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/internal/service"
)

type Handler struct {
	services *service.Services
	verifier *auth.Verifier

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, verifier *auth.Verifier, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		verifier:       verifier,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
