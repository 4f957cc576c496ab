// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-points-ledger/internal/config"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
)

// backend is the kind of store a DSN selects.
type backend int

const (
	backendMemory backend = iota
	backendPostgres
	backendSQLite
)

func backendFromDSN(dsn string) (backend, error) {
	switch {
	case dsn == "":
		return backendMemory, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return backendPostgres, nil
	case strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"), strings.HasSuffix(dsn, ".sqlite"):
		return backendSQLite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

// NewStorage opens the backend selected by cfg.DSN and brings its schema up
// to date.
func NewStorage(ctx context.Context, cfg config.DB, log *logger.Logger) (AccountStorage, error) {
	kind, err := backendFromDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch kind {
	case backendMemory:
		log.Warn().Msg("no database DSN configured, accounts are kept in memory")
		return NewMemoryStorage(log), nil
	case backendPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DSN, log)
	case backendSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DSN, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorage").Msg("failed to migrate database")
		_ = db.Close()
		return nil, err
	}

	return NewSQLStorage(db, log), nil
}
