// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-points-ledger/internal/ledger"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/models"
)

// LedgerLoggingService logs the outcome of every mutating ledger call.
type LedgerLoggingService struct {
	inner  LedgerService
	logger *logger.Logger
}

func NewLedgerLoggingService(logger *logger.Logger) LedgerServiceWrapper {
	return &LedgerLoggingService{logger: logger}
}

func (l *LedgerLoggingService) Wrap(inner LedgerService) LedgerService {
	return &LedgerLoggingService{inner: inner, logger: l.logger}
}

func (l *LedgerLoggingService) CreateUser(ctx context.Context, signer models.Identity, req models.CreateUserRequest) (models.UserAccount, error) {
	start := time.Now()
	account, err := l.inner.CreateUser(ctx, signer, req)
	l.log(ctx, "create_user", start, err).Uint32("user_id", req.ID).Send()
	return account, err
}

func (l *LedgerLoggingService) Transfer(ctx context.Context, signer models.Identity, req models.TransferRequest) (models.TransferResult, error) {
	start := time.Now()
	result, err := l.inner.Transfer(ctx, signer, req)
	l.log(ctx, "transfer", start, err).
		Uint32("sender_id", req.SenderID).
		Uint32("receiver_id", req.ReceiverID).
		Uint16("amount", req.Amount).
		Send()
	return result, err
}

func (l *LedgerLoggingService) RemoveUser(ctx context.Context, signer models.Identity, req models.RemoveUserRequest) (models.RemoveResult, error) {
	start := time.Now()
	result, err := l.inner.RemoveUser(ctx, signer, req)
	l.log(ctx, "remove_user", start, err).Uint32("user_id", req.ID).Uint64("refund", result.Refund).Send()
	return result, err
}

func (l *LedgerLoggingService) GetUser(ctx context.Context, id uint32) (models.UserAccount, error) {
	return l.inner.GetUser(ctx, id)
}

func (l *LedgerLoggingService) Credits(ctx context.Context, identity models.Identity) (models.CreditsResponse, error) {
	return l.inner.Credits(ctx, identity)
}

// log picks the request logger when the transport attached one.
func (l *LedgerLoggingService) log(ctx context.Context, op string, start time.Time, err error) *zerolog.Event {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = l.logger
	}

	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
		if code := ledger.Code(err); code != 0 {
			event = event.Int("code", code)
		}
	}

	return event.Str("op", op).Dur("elapsed", time.Since(start))
}
