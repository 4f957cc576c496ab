// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/models"
)

// memoryRow is one allocated slot. data is nil until the first Store.
type memoryRow struct {
	data    []byte
	payer   models.Identity
	deposit uint64
}

// MemoryStorage is an in-process [AccountStorage]. Records are kept in their
// binary encoding, exactly as a persistent backend would hold them.
//
// Transactions lock their slots in ascending order, so two transactions
// over overlapping slots never deadlock.
type MemoryStorage struct {
	logger *logger.Logger

	// mu guards rows, credits and locks. Slot locks are held across a whole
	// transaction; mu only for single map accesses.
	mu      sync.Mutex
	rows    map[models.Slot]memoryRow
	credits map[models.Identity]uint64
	locks   map[models.Slot]*sync.Mutex
}

// NewMemoryStorage returns an empty in-memory backend.
func NewMemoryStorage(log *logger.Logger) *MemoryStorage {
	log.Debug().Msg("creating in-memory account storage")
	return &MemoryStorage{
		logger:  log,
		rows:    make(map[models.Slot]memoryRow),
		credits: make(map[models.Identity]uint64),
		locks:   make(map[models.Slot]*sync.Mutex),
	}
}

// WithinTx implements [TxManager].
func (m *MemoryStorage) WithinTx(ctx context.Context, slots []models.Slot, fn TxFunc) error {
	ordered := slices.Clone(slots)
	slices.SortFunc(ordered, func(a, b models.Slot) int { return bytes.Compare(a[:], b[:]) })
	ordered = slices.Compact(ordered)

	unlock := m.lockSlots(ordered)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memoryTx{
		storage: m,
		slots:   ordered,
		writes:  make(map[models.Slot]*memoryRow),
		credits: make(map[models.Identity]uint64),
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	m.commit(tx)
	return nil
}

func (m *MemoryStorage) lockSlots(ordered []models.Slot) func() {
	held := make([]*sync.Mutex, 0, len(ordered))
	for _, slot := range ordered {
		m.mu.Lock()
		lock, ok := m.locks[slot]
		if !ok {
			lock = new(sync.Mutex)
			m.locks[slot] = lock
		}
		m.mu.Unlock()

		lock.Lock()
		held = append(held, lock)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func (m *MemoryStorage) commit(tx *memoryTx) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for slot, row := range tx.writes {
		if row == nil {
			delete(m.rows, slot)
			continue
		}
		m.rows[slot] = *row
	}
	for identity, amount := range tx.credits {
		m.credits[identity] += amount
	}
}

func (m *MemoryStorage) row(slot models.Slot) (memoryRow, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[slot]
	return row, ok
}

// Load implements [AccountRepository].
func (m *MemoryStorage) Load(ctx context.Context, slot models.Slot) (models.UserAccount, error) {
	var account models.UserAccount
	err := m.WithinTx(ctx, []models.Slot{slot}, func(ctx context.Context, repo AccountRepository) error {
		var err error
		account, err = repo.Load(ctx, slot)
		return err
	})
	return account, err
}

// Store implements [AccountRepository].
func (m *MemoryStorage) Store(ctx context.Context, slot models.Slot, account models.UserAccount) error {
	return m.WithinTx(ctx, []models.Slot{slot}, func(ctx context.Context, repo AccountRepository) error {
		return repo.Store(ctx, slot, account)
	})
}

// Allocate implements [AccountRepository].
func (m *MemoryStorage) Allocate(ctx context.Context, slot models.Slot, payer models.Identity, deposit uint64) error {
	return m.WithinTx(ctx, []models.Slot{slot}, func(ctx context.Context, repo AccountRepository) error {
		return repo.Allocate(ctx, slot, payer, deposit)
	})
}

// Free implements [AccountRepository].
func (m *MemoryStorage) Free(ctx context.Context, slot models.Slot, beneficiary models.Identity) (uint64, error) {
	var refund uint64
	err := m.WithinTx(ctx, []models.Slot{slot}, func(ctx context.Context, repo AccountRepository) error {
		var err error
		refund, err = repo.Free(ctx, slot, beneficiary)
		return err
	})
	return refund, err
}

// Credits implements [AccountRepository].
func (m *MemoryStorage) Credits(_ context.Context, identity models.Identity) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.credits[identity], nil
}

// Close implements [AccountStorage].
func (m *MemoryStorage) Close() error {
	return nil
}

// memoryTx buffers the writes of one transaction. A nil entry in writes
// marks a freed slot.
type memoryTx struct {
	storage *MemoryStorage
	slots   []models.Slot
	writes  map[models.Slot]*memoryRow
	credits map[models.Identity]uint64
}

func (tx *memoryTx) checkLocked(slot models.Slot) error {
	if _, found := slices.BinarySearchFunc(tx.slots, slot, func(a, b models.Slot) int {
		return bytes.Compare(a[:], b[:])
	}); !found {
		return fmt.Errorf("%w: %s", ErrSlotNotLocked, slot)
	}
	return nil
}

// current returns the row as this transaction sees it.
func (tx *memoryTx) current(slot models.Slot) (memoryRow, bool) {
	if row, written := tx.writes[slot]; written {
		if row == nil {
			return memoryRow{}, false
		}
		return *row, true
	}
	return tx.storage.row(slot)
}

func (tx *memoryTx) Load(_ context.Context, slot models.Slot) (models.UserAccount, error) {
	if err := tx.checkLocked(slot); err != nil {
		return models.UserAccount{}, err
	}

	row, ok := tx.current(slot)
	if !ok {
		return models.UserAccount{}, ErrAccountNotFound
	}
	if row.data == nil {
		return models.UserAccount{}, nil
	}

	var account models.UserAccount
	if err := account.UnmarshalBinary(row.data); err != nil {
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrDecodingAccount, err)
	}
	return account, nil
}

func (tx *memoryTx) Store(_ context.Context, slot models.Slot, account models.UserAccount) error {
	if err := tx.checkLocked(slot); err != nil {
		return err
	}

	row, ok := tx.current(slot)
	if !ok {
		return ErrAccountNotFound
	}

	data, err := account.MarshalBinary()
	if err != nil {
		return err
	}
	row.data = data
	tx.writes[slot] = &row
	return nil
}

func (tx *memoryTx) Allocate(_ context.Context, slot models.Slot, payer models.Identity, deposit uint64) error {
	if err := tx.checkLocked(slot); err != nil {
		return err
	}
	if _, ok := tx.current(slot); ok {
		return ErrSlotAlreadyAllocated
	}

	tx.writes[slot] = &memoryRow{payer: payer, deposit: deposit}
	return nil
}

func (tx *memoryTx) Free(_ context.Context, slot models.Slot, beneficiary models.Identity) (uint64, error) {
	if err := tx.checkLocked(slot); err != nil {
		return 0, err
	}

	row, ok := tx.current(slot)
	if !ok {
		return 0, ErrAccountNotFound
	}

	tx.writes[slot] = nil
	tx.credits[beneficiary] += row.deposit
	return row.deposit, nil
}

func (tx *memoryTx) Credits(ctx context.Context, identity models.Identity) (uint64, error) {
	committed, err := tx.storage.Credits(ctx, identity)
	if err != nil {
		return 0, err
	}
	return committed + tx.credits[identity], nil
}
