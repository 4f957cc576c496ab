// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-points-ledger/models"
)

// TokenSigner issues signer tokens for the local identity.
type TokenSigner interface {
	Identity() models.Identity
	Sign(op models.Operation) (string, error)
}

// ClientLedgerService defines the client-side contract for talking to the
// ledger. Mutating calls are signed with the local key before they are sent;
// the token commits to exactly the request being made.
type ClientLedgerService interface {
	// Identity returns the local signer identity, or the zero identity when
	// no key is loaded.
	Identity() models.Identity

	// CreateUser creates an account owned by the local identity.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.UserAccount, error)

	// Transfer sends points from an account owned by the local identity.
	Transfer(ctx context.Context, req models.TransferRequest) (models.TransferResult, error)

	// RemoveUser closes an account owned by the local identity. The deposit
	// is credited to the local identity.
	RemoveUser(ctx context.Context, req models.RemoveUserRequest) (models.RemoveResult, error)

	// GetUser fetches any account.
	GetUser(ctx context.Context, id uint32) (models.UserAccount, error)

	// Credits fetches the refund balance of identity.
	Credits(ctx context.Context, identity models.Identity) (models.CreditsResponse, error)

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
