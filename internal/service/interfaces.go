// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-points-ledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// LedgerService runs ledger operations against storage. Each mutating call
// is one atomic transaction over the slots it touches.
//
// signer is the identity authenticated by the transport. It is passed to the
// ledger unchanged and only ever compared for equality.
type LedgerService interface {
	// CreateUser creates account req.ID owned by signer, charging the storage
	// deposit to signer.
	CreateUser(ctx context.Context, signer models.Identity, req models.CreateUserRequest) (models.UserAccount, error)

	// Transfer moves req.Amount points between two accounts.
	Transfer(ctx context.Context, signer models.Identity, req models.TransferRequest) (models.TransferResult, error)

	// RemoveUser closes account req.ID and refunds its deposit to signer.
	RemoveUser(ctx context.Context, signer models.Identity, req models.RemoveUserRequest) (models.RemoveResult, error)

	// GetUser returns a live account.
	GetUser(ctx context.Context, id uint32) (models.UserAccount, error)

	// Credits returns the deposits refunded to identity so far.
	Credits(ctx context.Context, identity models.Identity) (models.CreditsResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// LedgerServiceWrapper defines middleware composition for LedgerService.
// Implementations wrap an existing LedgerService to add behavior such as
// logging.
type LedgerServiceWrapper interface {
	Wrap(LedgerService) LedgerService
}
