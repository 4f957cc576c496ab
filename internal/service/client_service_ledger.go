// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-points-ledger/internal/adapter"
	"github.com/MKhiriev/go-points-ledger/models"
)

type clientLedgerService struct {
	serverAdapter adapter.ServerAdapter
	signer        TokenSigner
}

func NewClientLedgerService(serverAdapter adapter.ServerAdapter, signer TokenSigner) ClientLedgerService {
	return &clientLedgerService{serverAdapter: serverAdapter, signer: signer}
}

func (c *clientLedgerService) Identity() models.Identity {
	if c.signer == nil {
		return models.ZeroIdentity
	}
	return c.signer.Identity()
}

func (c *clientLedgerService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.UserAccount, error) {
	token, err := c.sign(req.Operation())
	if err != nil {
		return models.UserAccount{}, err
	}

	account, err := c.serverAdapter.CreateUser(ctx, token, req)
	return account, mapAdapterError(err)
}

func (c *clientLedgerService) Transfer(ctx context.Context, req models.TransferRequest) (models.TransferResult, error) {
	token, err := c.sign(req.Operation())
	if err != nil {
		return models.TransferResult{}, err
	}

	result, err := c.serverAdapter.Transfer(ctx, token, req)
	return result, mapAdapterError(err)
}

func (c *clientLedgerService) RemoveUser(ctx context.Context, req models.RemoveUserRequest) (models.RemoveResult, error) {
	token, err := c.sign(req.Operation())
	if err != nil {
		return models.RemoveResult{}, err
	}

	result, err := c.serverAdapter.RemoveUser(ctx, token, req)
	return result, mapAdapterError(err)
}

func (c *clientLedgerService) GetUser(ctx context.Context, id uint32) (models.UserAccount, error) {
	account, err := c.serverAdapter.GetUser(ctx, id)
	return account, mapAdapterError(err)
}

func (c *clientLedgerService) Credits(ctx context.Context, identity models.Identity) (models.CreditsResponse, error) {
	credits, err := c.serverAdapter.Credits(ctx, identity)
	return credits, mapAdapterError(err)
}

func (c *clientLedgerService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.serverAdapter.Version(ctx)
	return version, mapAdapterError(err)
}

func (c *clientLedgerService) sign(op models.Operation) (string, error) {
	if c.signer == nil {
		return "", ErrNoSigner
	}

	token, err := c.signer.Sign(op)
	if err != nil {
		return "", fmt.Errorf("error signing %q: %w", op, err)
	}
	return token, nil
}
