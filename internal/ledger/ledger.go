// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/models"
)

// Record is an account together with the storage slot it was loaded from.
// Slots, not ids, decide whether two records are the same account.
type Record struct {
	Slot    models.Slot
	Account models.UserAccount
}

// Ledger applies account transitions. It is stateless and safe for
// concurrent use; callers serialize access to the records they pass in.
type Ledger struct {
	logger *logger.Logger
}

// New returns a Ledger that reports events to log unless the call context
// carries its own request logger.
func New(log *logger.Logger) *Ledger {
	if log == nil {
		log = logger.Nop()
	}
	return &Ledger{logger: log}
}

// Create produces a new account owned by owner with InitialPoints.
func (l *Ledger) Create(_ context.Context, id uint32, name string, owner models.Identity) (models.UserAccount, error) {
	if len(name) > models.MaxNameLength {
		return models.UserAccount{}, ErrNameTooLong
	}
	if owner.IsZero() {
		return models.UserAccount{}, ErrUnauthorized
	}

	account := models.UserAccount{
		ID:     id,
		Owner:  owner,
		Name:   name,
		Points: models.InitialPoints,
	}

	return account, nil
}

// Transfer moves amount points from sender to receiver on behalf of signer.
// Checks run in a fixed order and the first violation is returned: sender
// AccountDoesNotExist, Unauthorized, InvalidTransferAmount,
// IdenticalAccounts, receiver AccountDoesNotExist, InsufficientBalance,
// Overflow.
func (l *Ledger) Transfer(_ context.Context, sender, receiver Record, signer models.Identity, amount uint16) (Record, Record, error) {
	if !sender.Account.Exists() {
		return Record{}, Record{}, ErrAccountDoesNotExist
	}
	if signer != sender.Account.Owner {
		return Record{}, Record{}, ErrUnauthorized
	}
	if amount == 0 {
		return Record{}, Record{}, ErrInvalidTransferAmount
	}
	if sender.Slot == receiver.Slot {
		return Record{}, Record{}, ErrIdenticalAccounts
	}
	if !receiver.Account.Exists() {
		return Record{}, Record{}, ErrAccountDoesNotExist
	}

	senderPoints, ok := checkedSub(sender.Account.Points, amount)
	if !ok {
		return Record{}, Record{}, ErrInsufficientBalance
	}
	receiverPoints, ok := checkedAdd(receiver.Account.Points, amount)
	if !ok {
		return Record{}, Record{}, ErrOverflow
	}

	sender.Account.Points = senderPoints
	receiver.Account.Points = receiverPoints

	return sender, receiver, nil
}

// Remove authorizes the removal of account by signer. Releasing the storage
// and crediting the signer is left to the caller.
func (l *Ledger) Remove(_ context.Context, account models.UserAccount, signer models.Identity) error {
	if !account.Exists() {
		return ErrAccountDoesNotExist
	}
	if signer != account.Owner {
		return ErrUnauthorized
	}

	return nil
}

// Transitions do not log. Callers report an event once the transition they
// applied is durable, so a rolled back or retried attempt leaves no trace.

// Created reports the creation of account.
func (l *Ledger) Created(ctx context.Context, account models.UserAccount) {
	l.eventLogger(ctx).Info().
		Uint32("user_id", account.ID).
		Uint16("points", account.Points).
		Msgf("created user %d with %d points", account.ID, account.Points)
}

// Transferred reports a transfer of amount points between two accounts.
func (l *Ledger) Transferred(ctx context.Context, sender, receiver models.UserAccount, amount uint16) {
	l.eventLogger(ctx).Info().
		Uint32("sender_id", sender.ID).
		Uint32("receiver_id", receiver.ID).
		Uint16("amount", amount).
		Msgf("transferred %d from %d to %d", amount, sender.ID, receiver.ID)
}

// Closed reports the removal of the account with the given id.
func (l *Ledger) Closed(ctx context.Context, id uint32) {
	l.eventLogger(ctx).Info().
		Uint32("user_id", id).
		Msgf("account closed for user %d", id)
}

func (l *Ledger) eventLogger(ctx context.Context) *zerolog.Logger {
	if ctxLogger := zerolog.Ctx(ctx); ctxLogger.GetLevel() != zerolog.Disabled {
		return ctxLogger
	}
	return &l.logger.Logger
}

func checkedSub(a, b uint16) (uint16, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

func checkedAdd(a, b uint16) (uint16, bool) {
	if uint32(a)+uint32(b) > math.MaxUint16 {
		return 0, false
	}
	return a + b, true
}
