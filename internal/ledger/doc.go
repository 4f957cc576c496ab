// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ledger implements the account state machine of the points ledger.
//
// A [Ledger] validates and applies the three transitions an account can go
// through:
//
//	NonExistent --Create--> Live --Remove--> NonExistent
//	                        Live --Transfer--> Live
//
// The package is pure. It never reads or writes storage, never verifies
// signatures and never derives storage slots. Callers hand it located,
// decoded records together with an already authenticated signer identity,
// and persist whatever it returns. Every failure is one of the sentinel
// errors declared in errors.go; a failed call returns no records, so nothing
// is partially applied. Transitions are silent: [Ledger.Created],
// [Ledger.Transferred] and [Ledger.Closed] log the events once the caller has
// persisted the result.
package ledger
