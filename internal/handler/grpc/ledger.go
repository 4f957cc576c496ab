// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-points-ledger/internal/auth"
	"github.com/MKhiriev/go-points-ledger/models"
)

func (h *Handler) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.UserAccount, error) {
	signer, err := signerFor(ctx, req.Operation())
	if err != nil {
		return nil, err
	}

	account, err := h.services.LedgerService.CreateUser(ctx, signer, *req)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (h *Handler) Transfer(ctx context.Context, req *models.TransferRequest) (*models.TransferResult, error) {
	signer, err := signerFor(ctx, req.Operation())
	if err != nil {
		return nil, err
	}

	result, err := h.services.LedgerService.Transfer(ctx, signer, *req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (h *Handler) RemoveUser(ctx context.Context, req *models.RemoveUserRequest) (*models.RemoveResult, error) {
	signer, err := signerFor(ctx, req.Operation())
	if err != nil {
		return nil, err
	}

	result, err := h.services.LedgerService.RemoveUser(ctx, signer, *req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (h *Handler) GetUser(ctx context.Context, req *models.GetUserRequest) (*models.UserAccount, error) {
	account, err := h.services.LedgerService.GetUser(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (h *Handler) Credits(ctx context.Context, req *models.CreditsRequest) (*models.CreditsResponse, error) {
	credits, err := h.services.LedgerService.Credits(ctx, req.Identity)
	if err != nil {
		return nil, err
	}
	return &credits, nil
}

func (h *Handler) Version(ctx context.Context, _ *models.VersionRequest) (*models.VersionResponse, error) {
	return &models.VersionResponse{Version: h.services.AppInfoService.GetAppVersion(ctx)}, nil
}

// signerFor returns the authenticated signer if its token was issued for op.
func signerFor(ctx context.Context, op models.Operation) (models.Identity, error) {
	token, ok := auth.TokenFromContext(ctx)
	if !ok {
		return models.ZeroIdentity, auth.ErrMissingToken
	}
	return auth.Authorize(token, op)
}
