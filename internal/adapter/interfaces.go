// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the points ledger server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). When the
// server reports a ledger rule violation, the matching ledger error is
// wrapped as well.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-points-ledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the ledger
// server. Mutating calls carry a signer token issued for exactly that
// request.
type ServerAdapter interface {
	// CreateUser sends POST /api/users and returns the created account.
	CreateUser(ctx context.Context, token string, req models.CreateUserRequest) (models.UserAccount, error)

	// Transfer sends POST /api/transfers and returns both updated accounts.
	Transfer(ctx context.Context, token string, req models.TransferRequest) (models.TransferResult, error)

	// RemoveUser sends DELETE /api/users/{id} and returns the refund.
	RemoveUser(ctx context.Context, token string, req models.RemoveUserRequest) (models.RemoveResult, error)

	// GetUser fetches an account. No token is needed.
	GetUser(ctx context.Context, id uint32) (models.UserAccount, error)

	// Credits fetches the refund balance of identity. No token is needed.
	Credits(ctx context.Context, identity models.Identity) (models.CreditsResponse, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
