// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/models"
)

// ─── helpers ──────────────────────────────────────────────────────────────

func identity(b byte) models.Identity {
	var id models.Identity
	for i := range id {
		id[i] = b
	}
	return id
}

func slot(b byte) models.Slot {
	var s models.Slot
	s[0] = b
	return s
}

var (
	alice = identity(0xA1)
	bob   = identity(0xB0)
	eve   = identity(0xEE)
)

func record(s byte, id uint32, owner models.Identity, points uint16) Record {
	return Record{
		Slot:    slot(s),
		Account: models.UserAccount{ID: id, Owner: owner, Name: "user", Points: points},
	}
}

func capture(t *testing.T) (*Ledger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New(&logger.Logger{Logger: zerolog.New(&buf)}), &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

// ─── Create ───────────────────────────────────────────────────────────────

func TestLedger_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		owner   models.Identity
		wantErr error
	}{
		{name: "empty name", input: "", owner: alice},
		{name: "short name", input: "alice", owner: alice},
		{name: "name at limit", input: "abcdefghij", owner: alice},
		{name: "name over limit", input: "abcdefghijk", owner: alice, wantErr: ErrNameTooLong},
		{name: "multibyte name counted in bytes", input: "ééééééé", owner: alice, wantErr: ErrNameTooLong},
		{name: "zero owner", input: "alice", owner: models.ZeroIdentity, wantErr: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(logger.Nop())

			acc, err := l.Create(context.Background(), 7, tt.input, tt.owner)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, models.UserAccount{}, acc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.UserAccount{ID: 7, Owner: tt.owner, Name: tt.input, Points: 1000}, acc)
			assert.True(t, acc.Exists())
		})
	}
}

func TestLedger_Create_IsSilent(t *testing.T) {
	l, buf := capture(t)

	_, err := l.Create(context.Background(), 1, "alice", alice)
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}

// ─── events ───────────────────────────────────────────────────────────────

func TestLedger_Events(t *testing.T) {
	a := models.UserAccount{ID: 1, Owner: alice, Name: "alice", Points: 700}
	b := models.UserAccount{ID: 2, Owner: bob, Name: "bob", Points: 1300}

	tests := []struct {
		name    string
		emit    func(l *Ledger, ctx context.Context)
		message string
		fields  map[string]any
	}{
		{
			name:    "created",
			emit:    func(l *Ledger, ctx context.Context) { l.Created(ctx, models.UserAccount{ID: 1, Owner: alice, Points: 1000}) },
			message: "created user 1 with 1000 points",
			fields:  map[string]any{"user_id": 1, "points": 1000},
		},
		{
			name:    "transferred",
			emit:    func(l *Ledger, ctx context.Context) { l.Transferred(ctx, a, b, 300) },
			message: "transferred 300 from 1 to 2",
			fields:  map[string]any{"sender_id": 1, "receiver_id": 2, "amount": 300},
		},
		{
			name:    "closed",
			emit:    func(l *Ledger, ctx context.Context) { l.Closed(ctx, 2) },
			message: "account closed for user 2",
			fields:  map[string]any{"user_id": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := capture(t)

			tt.emit(l, context.Background())

			entry := lastEntry(t, buf)
			assert.Equal(t, tt.message, entry["message"])
			assert.Equal(t, "info", entry["level"])
			for k, v := range tt.fields {
				assert.EqualValues(t, v, entry[k], k)
			}
		})
	}
}

// TestLedger_Events_PreferContextLogger verifies that a request logger
// attached to the context receives the event instead of the ledger logger.
func TestLedger_Events_PreferContextLogger(t *testing.T) {
	l, base := capture(t)

	var reqBuf bytes.Buffer
	ctx := zerolog.New(&reqBuf).With().Str("trace_id", "abc").Logger().WithContext(context.Background())

	l.Created(ctx, models.UserAccount{ID: 2, Owner: bob, Name: "bob", Points: 1000})

	assert.Empty(t, base.String())
	entry := lastEntry(t, &reqBuf)
	assert.Equal(t, "abc", entry["trace_id"])
	assert.Equal(t, "created user 2 with 1000 points", entry["message"])
}

// ─── Transfer ─────────────────────────────────────────────────────────────

func TestLedger_Transfer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		sender   Record
		receiver Record
		signer   models.Identity
		amount   uint16
		wantErr  error
	}{
		{
			name:     "signer is not sender owner",
			sender:   record(1, 1, alice, 1000),
			receiver: record(2, 2, bob, 1000),
			signer:   eve,
			amount:   10,
			wantErr:  ErrUnauthorized,
		},
		{
			name:     "unauthorized wins over zero amount",
			sender:   record(1, 1, alice, 1000),
			receiver: record(2, 2, bob, 1000),
			signer:   bob,
			amount:   0,
			wantErr:  ErrUnauthorized,
		},
		{
			name:     "unauthorized wins over insufficient balance",
			sender:   record(1, 1, alice, 5),
			receiver: record(2, 2, bob, 1000),
			signer:   bob,
			amount:   100,
			wantErr:  ErrUnauthorized,
		},
		{
			name:     "missing sender",
			sender:   Record{Slot: slot(1)},
			receiver: record(2, 2, bob, 1000),
			signer:   alice,
			amount:   10,
			wantErr:  ErrAccountDoesNotExist,
		},
		{
			name:     "zero amount",
			sender:   record(1, 1, alice, 1000),
			receiver: record(2, 2, bob, 1000),
			signer:   alice,
			amount:   0,
			wantErr:  ErrInvalidTransferAmount,
		},
		{
			name:     "zero amount wins over identical accounts",
			sender:   record(1, 1, alice, 1000),
			receiver: record(1, 1, alice, 1000),
			signer:   alice,
			amount:   0,
			wantErr:  ErrInvalidTransferAmount,
		},
		{
			name:     "same slot",
			sender:   record(1, 1, alice, 1000),
			receiver: record(1, 1, alice, 1000),
			signer:   alice,
			amount:   10,
			wantErr:  ErrIdenticalAccounts,
		},
		{
			name:     "identical accounts wins over missing receiver",
			sender:   record(1, 1, alice, 1000),
			receiver: Record{Slot: slot(1)},
			signer:   alice,
			amount:   10,
			wantErr:  ErrIdenticalAccounts,
		},
		{
			name:     "receiver never created",
			sender:   record(1, 1, alice, 1000),
			receiver: Record{Slot: slot(2)},
			signer:   alice,
			amount:   10,
			wantErr:  ErrAccountDoesNotExist,
		},
		{
			name:     "missing receiver wins over insufficient balance",
			sender:   record(1, 1, alice, 5),
			receiver: Record{Slot: slot(2)},
			signer:   alice,
			amount:   10,
			wantErr:  ErrAccountDoesNotExist,
		},
		{
			name:     "amount above balance",
			sender:   record(1, 1, alice, 299),
			receiver: record(2, 2, bob, 0),
			signer:   alice,
			amount:   300,
			wantErr:  ErrInsufficientBalance,
		},
		{
			name:     "insufficient balance wins over overflow",
			sender:   record(1, 1, alice, 5),
			receiver: record(2, 2, bob, math.MaxUint16),
			signer:   alice,
			amount:   10,
			wantErr:  ErrInsufficientBalance,
		},
		{
			name:     "receiver overflow",
			sender:   record(1, 1, alice, 1000),
			receiver: record(2, 2, bob, math.MaxUint16-9),
			signer:   alice,
			amount:   10,
			wantErr:  ErrOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := capture(t)
			senderBefore, receiverBefore := tt.sender, tt.receiver

			s, r, err := l.Transfer(context.Background(), tt.sender, tt.receiver, tt.signer, tt.amount)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Record{}, s)
			assert.Equal(t, Record{}, r)
			assert.Equal(t, senderBefore, tt.sender)
			assert.Equal(t, receiverBefore, tt.receiver)
			assert.Empty(t, buf.String())
		})
	}
}

func TestLedger_Transfer_Success(t *testing.T) {
	tests := []struct {
		name           string
		senderPoints   uint16
		receiverPoints uint16
		amount         uint16
	}{
		{name: "typical", senderPoints: 1000, receiverPoints: 1000, amount: 300},
		{name: "whole balance", senderPoints: 1000, receiverPoints: 0, amount: 1000},
		{name: "receiver reaches max", senderPoints: 1000, receiverPoints: math.MaxUint16 - 10, amount: 10},
		{name: "single point", senderPoints: 1, receiverPoints: 1, amount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(logger.Nop())
			sender := record(1, 1, alice, tt.senderPoints)
			receiver := record(2, 2, bob, tt.receiverPoints)

			s, r, err := l.Transfer(context.Background(), sender, receiver, alice, tt.amount)
			require.NoError(t, err)

			assert.Equal(t, tt.senderPoints-tt.amount, s.Account.Points)
			assert.Equal(t, tt.receiverPoints+tt.amount, r.Account.Points)
			assert.Equal(t,
				uint32(tt.senderPoints)+uint32(tt.receiverPoints),
				uint32(s.Account.Points)+uint32(r.Account.Points))

			// only the balance changes
			s.Account.Points, r.Account.Points = sender.Account.Points, receiver.Account.Points
			assert.Equal(t, sender, s)
			assert.Equal(t, receiver, r)
		})
	}
}

// TestLedger_Transfer_ReceiverOwnerNotChecked verifies that any live account
// can be credited, whoever owns it.
func TestLedger_Transfer_ReceiverOwnerNotChecked(t *testing.T) {
	l := New(logger.Nop())

	_, r, err := l.Transfer(context.Background(), record(1, 1, alice, 100), record(2, 2, eve, 0), alice, 50)
	require.NoError(t, err)
	assert.Equal(t, uint16(50), r.Account.Points)
}

// TestLedger_Transfer_SameIDDifferentSlot verifies that identity of accounts
// is decided by slot, not by the id value.
func TestLedger_Transfer_SameIDDifferentSlot(t *testing.T) {
	l := New(logger.Nop())

	_, _, err := l.Transfer(context.Background(), record(1, 5, alice, 100), record(2, 5, bob, 0), alice, 50)
	assert.NoError(t, err)
}

func TestLedger_Transfer_IsSilent(t *testing.T) {
	l, buf := capture(t)

	_, _, err := l.Transfer(context.Background(), record(1, 1, alice, 1000), record(2, 2, bob, 1000), alice, 300)
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}

// ─── Remove ───────────────────────────────────────────────────────────────

func TestLedger_Remove(t *testing.T) {
	tests := []struct {
		name    string
		account models.UserAccount
		signer  models.Identity
		wantErr error
	}{
		{name: "owner removes", account: record(1, 1, alice, 10).Account, signer: alice},
		{name: "non owner", account: record(1, 1, alice, 10).Account, signer: bob, wantErr: ErrUnauthorized},
		{name: "never created", account: models.UserAccount{ID: 1}, signer: alice, wantErr: ErrAccountDoesNotExist},
		{name: "missing wins over unauthorized", account: models.UserAccount{ID: 1}, signer: models.ZeroIdentity, wantErr: ErrAccountDoesNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := capture(t)
			before := tt.account

			err := l.Remove(context.Background(), tt.account, tt.signer)

			assert.Equal(t, before, tt.account)
			assert.Empty(t, buf.String())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ─── lifecycle ────────────────────────────────────────────────────────────

// TestLedger_Lifecycle walks alice and bob through create, transfer and
// removal, then transfers from the removed account.
func TestLedger_Lifecycle(t *testing.T) {
	ctx := context.Background()
	l := New(logger.Nop())

	a, err := l.Create(ctx, 1, "alice", alice)
	require.NoError(t, err)
	b, err := l.Create(ctx, 2, "bob", bob)
	require.NoError(t, err)

	s, r, err := l.Transfer(ctx, Record{Slot: slot(1), Account: a}, Record{Slot: slot(2), Account: b}, alice, 300)
	require.NoError(t, err)
	assert.Equal(t, uint16(700), s.Account.Points)
	assert.Equal(t, uint16(1300), r.Account.Points)

	require.NoError(t, l.Remove(ctx, s.Account, alice))

	// the host frees the slot; a later load yields the zero record
	_, _, err = l.Transfer(ctx, Record{Slot: slot(1)}, r, alice, 1)
	assert.ErrorIs(t, err, ErrAccountDoesNotExist)
}
