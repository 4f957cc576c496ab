// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Operation is the canonical textual form of a signed ledger operation.
// A signer commits to exactly one Operation per token, so a token issued for
// one transfer cannot be replayed for a different amount or counterparty.
type Operation string

// CreateOperation is the canonical form of creating account id named name.
func CreateOperation(id uint32, name string) Operation {
	return Operation("create:" + strconv.FormatUint(uint64(id), 10) + ":" + name)
}

// TransferOperation is the canonical form of moving amount points from
// senderID to receiverID.
func TransferOperation(senderID, receiverID uint32, amount uint16) Operation {
	return Operation("transfer:" +
		strconv.FormatUint(uint64(senderID), 10) + ":" +
		strconv.FormatUint(uint64(receiverID), 10) + ":" +
		strconv.FormatUint(uint64(amount), 10))
}

// RemoveOperation is the canonical form of removing account id.
func RemoveOperation(id uint32) Operation {
	return Operation("remove:" + strconv.FormatUint(uint64(id), 10))
}

// Digest returns the hex SHA-256 of the operation, as carried in signer
// tokens.
func (o Operation) Digest() string {
	sum := sha256.Sum256([]byte(o))
	return hex.EncodeToString(sum[:])
}
