// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"slices"

	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/models"
)

// maxTxAttempts bounds how often a transaction failing with a retryable
// error (deadlock, serialization failure, busy database) is run.
const maxTxAttempts = 3

// SQLStorage is the [AccountStorage] over PostgreSQL or SQLite.
type SQLStorage struct {
	*accountRepository
	db     *DB
	logger *logger.Logger
}

// NewSQLStorage wraps an open, migrated database.
func NewSQLStorage(db *DB, log *logger.Logger) *SQLStorage {
	log.Debug().Str("dialect", string(db.dialect)).Msg("creating sql account storage")
	return &SQLStorage{
		accountRepository: &accountRepository{db: db.DB, queries: newQueries(db.dialect)},
		db:                db,
		logger:            log,
	}
}

// WithinTx implements [TxManager]. Rows of slots are locked in slot order
// before fn runs.
func (s *SQLStorage) WithinTx(ctx context.Context, slots []models.Slot, fn TxFunc) error {
	ordered := slices.Clone(slots)
	slices.SortFunc(ordered, func(a, b models.Slot) int { return bytes.Compare(a[:], b[:]) })
	ordered = slices.Compact(ordered)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = s.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
			repo := &accountRepository{db: tx, queries: s.queries}
			if err := repo.lock(ctx, ordered); err != nil {
				return err
			}
			return fn(ctx, repo)
		})

		if err == nil || s.db.errorClassificator == nil ||
			s.db.errorClassificator.Classify(err) != Retryable || ctx.Err() != nil {
			return err
		}

		logger.FromContext(ctx).Warn().
			Err(err).
			Int("attempt", attempt).
			Msg("retrying account transaction")
	}

	return err
}

// Free implements [AccountRepository]. Deleting the slot and crediting the
// deposit happen in one transaction.
func (s *SQLStorage) Free(ctx context.Context, slot models.Slot, beneficiary models.Identity) (uint64, error) {
	var refund uint64
	err := s.WithinTx(ctx, []models.Slot{slot}, func(ctx context.Context, repo AccountRepository) error {
		var err error
		refund, err = repo.Free(ctx, slot, beneficiary)
		return err
	})
	return refund, err
}

// Close closes the connection pool.
func (s *SQLStorage) Close() error {
	return s.db.Close()
}
