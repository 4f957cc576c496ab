// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// MaxNameLength is the maximum length of an account name in bytes.
	MaxNameLength = 10

	// InitialPoints is the balance every account starts with.
	InitialPoints uint16 = 1000

	// AccountSpace is the number of bytes reserved for one encoded account:
	// discriminator + id + owner + (length prefix + name) + points.
	AccountSpace = discriminatorSize + 4 + IdentitySize + (4 + MaxNameLength) + 2
)

// UserAccount is the persisted state of one user: who owns it, its label and
// its point balance.
//
// ID, Owner and Name are fixed at creation. Only Points changes afterwards.
type UserAccount struct {
	// ID is chosen by the creator and determines the account's storage slot.
	ID uint32 `json:"id"`

	// Owner is the only identity allowed to spend from or remove the account.
	Owner Identity `json:"owner"`

	// Name is a short label of at most MaxNameLength bytes.
	Name string `json:"name"`

	// Points is the transferable balance.
	Points uint16 `json:"points"`
}

// Exists reports whether a is a live account. Accounts that were never
// created or were already removed have the zero owner.
func (a UserAccount) Exists() bool {
	return !a.Owner.IsZero()
}
