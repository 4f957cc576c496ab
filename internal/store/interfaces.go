// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-points-ledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository reads and writes account records by slot.
type AccountRepository interface {
	// Load returns the record stored in slot. A slot that is allocated but
	// not yet written yields the zero account. ErrAccountNotFound is returned
	// for a slot that is not allocated.
	Load(ctx context.Context, slot models.Slot) (models.UserAccount, error)

	// Store overwrites the record in an allocated slot.
	Store(ctx context.Context, slot models.Slot, account models.UserAccount) error

	// Allocate reserves slot, charging deposit to payer.
	// ErrSlotAlreadyAllocated is returned when the slot is taken.
	Allocate(ctx context.Context, slot models.Slot, payer models.Identity, deposit uint64) error

	// Free releases slot and credits its deposit to beneficiary.
	Free(ctx context.Context, slot models.Slot, beneficiary models.Identity) (uint64, error)

	// Credits returns the deposits accumulated by identity.
	Credits(ctx context.Context, identity models.Identity) (uint64, error)
}

// TxFunc is the body of a transaction. The repository it receives is only
// valid until the function returns. A backend may run fn again after a
// retryable failure, so fn must not have effects outside repo.
type TxFunc func(ctx context.Context, repo AccountRepository) error

// TxManager runs operations atomically.
type TxManager interface {
	// WithinTx runs fn with exclusive access to slots. Either every write fn
	// made is applied or none is. Concurrent transactions sharing a slot are
	// serialized.
	WithinTx(ctx context.Context, slots []models.Slot, fn TxFunc) error
}

// AccountStorage is a complete account backend.
type AccountStorage interface {
	AccountRepository
	TxManager

	// Close releases the resources held by the backend.
	Close() error
}
