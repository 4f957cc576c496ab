// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"google.golang.org/grpc"

	"github.com/MKhiriev/go-points-ledger/internal/auth"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/internal/service"
)

// Handler is the root gRPC transport handler.
//
// It implements [LedgerServer] on top of the service layer. A handler
// instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services
	verifier *auth.Verifier

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container,
// token verifier and logger.
func NewHandler(services *service.Services, verifier *auth.Verifier, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		verifier: verifier,
		logger:   logger,
	}
}

// ServerOptions returns the codec and interceptor chain the handler
// expects its server to run with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ForceServerCodec(Codec()),
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging, h.withErrorStatus, h.withAuth),
	}
}

// Register attaches the ledger service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&LedgerServiceDesc, h)
}
