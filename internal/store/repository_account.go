// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/models"
)

// accountRepository is the SQL implementation of [AccountRepository]. It
// runs against either the pool or an open transaction.
type accountRepository struct {
	db      DBTX
	queries queries
}

// Load implements [AccountRepository].
func (r *accountRepository) Load(ctx context.Context, slot models.Slot) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.loadAccount(slot)
	if err != nil {
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data []byte
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserAccount{}, ErrAccountNotFound
		}
		log.Err(err).
			Str("func", "*accountRepository.Load").
			Str("slot", slot.String()).
			Msg("failed to load account")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// allocated, never written
	if len(data) == 0 {
		return models.UserAccount{}, nil
	}

	var account models.UserAccount
	if err = account.UnmarshalBinary(data); err != nil {
		log.Err(err).
			Str("func", "*accountRepository.Load").
			Str("slot", slot.String()).
			Msg("stored account is corrupt")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrDecodingAccount, err)
	}

	return account, nil
}

// Store implements [AccountRepository].
func (r *accountRepository) Store(ctx context.Context, slot models.Slot, account models.UserAccount) error {
	log := logger.FromContext(ctx)

	data, err := account.MarshalBinary()
	if err != nil {
		return err
	}

	query, args, err := r.queries.storeAccount(slot, account, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.Store").
			Uint32("user_id", account.ID).
			Msg("failed to store account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// Allocate implements [AccountRepository].
func (r *accountRepository) Allocate(ctx context.Context, slot models.Slot, payer models.Identity, deposit uint64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.allocateSlot(slot, payer, deposit)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrSlotAlreadyAllocated
		}
		log.Err(err).
			Str("func", "*accountRepository.Allocate").
			Str("slot", slot.String()).
			Msg("failed to allocate slot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Free implements [AccountRepository]. The slot is deleted and the deposit is
// added to the beneficiary's credits in the same unit of work as the caller.
func (r *accountRepository) Free(ctx context.Context, slot models.Slot, beneficiary models.Identity) (uint64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.freeSlot(slot)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deposit int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&deposit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrAccountNotFound
		}
		log.Err(err).
			Str("func", "*accountRepository.Free").
			Str("slot", slot.String()).
			Msg("failed to free slot")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = r.queries.addCredits(beneficiary, uint64(deposit))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*accountRepository.Free").
			Str("beneficiary", beneficiary.String()).
			Msg("failed to credit deposit")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return uint64(deposit), nil
}

// Credits implements [AccountRepository].
func (r *accountRepository) Credits(ctx context.Context, identity models.Identity) (uint64, error) {
	query, args, err := r.queries.credits(identity)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var amount int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return uint64(amount), nil
}

// lock takes row locks on slots, if the dialect has them.
func (r *accountRepository) lock(ctx context.Context, slots []models.Slot) error {
	if !r.queries.lockRows || len(slots) == 0 {
		return nil
	}

	query, args, err := r.queries.lockSlots(slots)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var locked string
		if err = rows.Scan(&locked); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return nil
}
