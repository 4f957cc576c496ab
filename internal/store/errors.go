// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountNotFound is returned when a slot holds no allocated record.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSlotAlreadyAllocated is returned by Allocate when the slot is
	// already taken, i.e. an account with the same id exists.
	ErrSlotAlreadyAllocated = errors.New("slot already allocated")

	// ErrSlotNotLocked is returned when a transaction touches a slot it did
	// not declare up front.
	ErrSlotNotLocked = errors.New("slot was not locked by the transaction")

	// ErrUnsupportedDSN is returned when no backend understands the DSN.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan account row")

	// ErrDecodingAccount is returned when stored account bytes are corrupt.
	ErrDecodingAccount = errors.New("failed to decode stored account")
)
