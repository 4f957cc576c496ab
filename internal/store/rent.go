// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-points-ledger/models"

const (
	// storageOverhead is the per-record metadata charged on top of its data.
	storageOverhead = 128

	// exemptionPeriods is the number of rent periods a deposit must cover to
	// keep a record alive indefinitely.
	exemptionPeriods = 2
)

// Deposit returns the refundable deposit for a record of space bytes.
func Deposit(space int, lamportsPerByte uint64) uint64 {
	return uint64(space+storageOverhead) * lamportsPerByte * exemptionPeriods
}

// AccountDeposit returns the deposit for one user account.
func AccountDeposit(lamportsPerByte uint64) uint64 {
	return Deposit(models.AccountSpace, lamportsPerByte)
}
